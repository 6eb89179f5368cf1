package resource

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/stolenlands.quest/internal/core/dice"
	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// EvaluateValue resolves a value formula for the tag. For
// roll-resource-dice the formula is a die quantity and the die size
// comes from the kingdom's size tier; any other formula containing a
// die marker rolls as written; everything else parses as an integer.
func EvaluateValue(ctx context.Context, roller dice.Roller, k domain.Kingdom, t Type, formula string) (int, error) {
	formula = strings.TrimSpace(formula)

	if t == TypeRollResourceDice {
		sides := k.SizeData().ResourceDieSides
		result, err := roller.Roll(ctx, fmt.Sprintf("%sd%d", formula, sides))
		if err != nil {
			return 0, err
		}
		return result.Total, nil
	}

	if dice.HasDieMarker(formula) {
		result, err := roller.Roll(ctx, formula)
		if err != nil {
			return 0, err
		}
		return result.Total, nil
	}

	value, err := strconv.Atoi(formula)
	if err != nil {
		return 0, apperrors.WithMetadata(
			apperrors.CodeDiceInvalidFormula,
			fmt.Sprintf("invalid value formula: %q", formula),
			map[string]string{"Formula": formula},
		)
	}
	return value, nil
}
