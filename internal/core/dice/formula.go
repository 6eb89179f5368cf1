package dice

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
)

// Formula is a parsed dice-notation expression of the form
// <count>d<sides>[+modifier] or <count>d<sides>[-modifier].
type Formula struct {
	Count    int
	Sides    int
	Modifier int
}

// String renders the formula back into canonical dice notation.
func (f Formula) String() string {
	switch {
	case f.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", f.Count, f.Sides, f.Modifier)
	case f.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", f.Count, f.Sides, f.Modifier)
	default:
		return fmt.Sprintf("%dd%d", f.Count, f.Sides)
	}
}

// HasDieMarker reports whether text looks like dice notation rather
// than a plain integer. Callers use this to decide between rolling and
// parsing a flat value.
func HasDieMarker(text string) bool {
	return strings.ContainsAny(text, "dD")
}

// ParseFormula parses dice notation such as "2d6", "1d20+3" or "3d4-1".
// A missing count defaults to 1 die.
func ParseFormula(text string) (Formula, error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	index := strings.IndexByte(trimmed, 'd')
	if index < 0 {
		return Formula{}, invalidFormulaError(text)
	}

	count := 1
	if prefix := trimmed[:index]; prefix != "" {
		parsed, err := strconv.Atoi(prefix)
		if err != nil {
			return Formula{}, invalidFormulaError(text)
		}
		count = parsed
	}

	rest := trimmed[index+1:]
	modifier := 0
	if split := strings.IndexAny(rest, "+-"); split >= 0 {
		parsed, err := strconv.Atoi(rest[split:])
		if err != nil {
			return Formula{}, invalidFormulaError(text)
		}
		modifier = parsed
		rest = rest[:split]
	}

	sides, err := strconv.Atoi(rest)
	if err != nil {
		return Formula{}, invalidFormulaError(text)
	}
	if count <= 0 || sides <= 0 {
		return Formula{}, invalidFormulaError(text)
	}

	return Formula{Count: count, Sides: sides, Modifier: modifier}, nil
}

func invalidFormulaError(text string) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.CodeDiceInvalidFormula,
		fmt.Sprintf("invalid dice formula: %s", text),
		map[string]string{"Formula": text},
	)
}
