package turn

import (
	"context"
	"strconv"

	"github.com/louisbranch/stolenlands.quest/internal/core/check"
	"github.com/louisbranch/stolenlands.quest/internal/core/dice"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// Event check constants. Each quiet turn lowers the DC until an event
// becomes certain.
const (
	EventBaseDC         = 16
	EventDCStepPerQuiet = 5
)

// CheckForEvent rolls for a random kingdom event. Success resets the
// quiet-turn counter and signals the caller that an event occurs;
// failure increments the counter, making next turn's check easier.
func CheckForEvent(ctx context.Context, roller dice.Roller, k domain.Kingdom) (Outcome, error) {
	dc := check.FloorDC(EventBaseDC - EventDCStepPerQuiet*k.TurnsWithoutEvent)

	roll, err := roller.Roll(ctx, "1d20")
	if err != nil {
		return Outcome{}, err
	}
	result := check.Check(roll.Total, dc)

	turns := k.TurnsWithoutEvent + 1
	key := EventQuietTurn
	if result.Success {
		turns = 0
		key = EventOccurred
	}

	return Outcome{
		Patch: domain.Patch{TurnsWithoutEvent: domain.IntPtr(turns)},
		Events: []Event{{
			Key: key,
			Metadata: map[string]string{
				"Roll": strconv.Itoa(roll.Total),
				"DC":   strconv.Itoa(dc),
			},
		}},
	}, nil
}
