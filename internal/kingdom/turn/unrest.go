package turn

import (
	"context"
	"strconv"

	"github.com/louisbranch/stolenlands.quest/internal/core/check"
	"github.com/louisbranch/stolenlands.quest/internal/core/dice"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/settlement"
)

// AdjustUnrest applies the turn's unrest sources: being at war,
// overcrowded settlements, and holding any secondary territory each
// add one point. A level 20 kingdom suppresses a positive adjustment
// entirely. When the resulting unrest reaches the ruin threshold the
// step rolls ruin accrual and a flat check against hex loss; the roll
// results are reported for external distribution, not applied here.
// Reaching the anarchy threshold emits a warning only.
func AdjustUnrest(ctx context.Context, roller dice.Roller, k domain.Kingdom, settlements []settlement.Record) (Outcome, error) {
	delta := 0
	if k.AtWar {
		delta++
	}
	secondary := false
	for _, s := range settlements {
		if s.Overcrowded {
			delta++
		}
		if s.SecondaryTerritory {
			secondary = true
		}
	}
	if secondary {
		delta++
	}
	if k.Level >= domain.LevelMax && delta > 0 {
		delta = 0
	}

	unrest := max(0, k.Unrest+delta)

	events := []Event{{
		Key: EventUnrestAdjusted,
		Metadata: map[string]string{
			"Delta":  strconv.Itoa(delta),
			"Unrest": strconv.Itoa(unrest),
		},
	}}

	if unrest >= domain.UnrestRuinThreshold {
		ruinRoll, err := roller.Roll(ctx, "1d10")
		if err != nil {
			return Outcome{}, err
		}
		hexRoll, err := roller.Roll(ctx, "1d20")
		if err != nil {
			return Outcome{}, err
		}
		result := check.FlatCheck(hexRoll.Total, domain.HexLossDC)
		events = append(events,
			Event{
				Key:      EventRuinAccrued,
				Metadata: map[string]string{"Ruin": strconv.Itoa(ruinRoll.Total)},
			},
			Event{
				Key: EventHexLossChecked,
				Metadata: map[string]string{
					"Roll":    strconv.Itoa(hexRoll.Total),
					"DC":      strconv.Itoa(domain.HexLossDC),
					"HexLost": strconv.FormatBool(!result.Success),
				},
			},
		)
	}

	if unrest >= k.AnarchyAt() {
		events = append(events, Event{
			Key: EventAnarchyWarning,
			Metadata: map[string]string{
				"Unrest":    strconv.Itoa(unrest),
				"Threshold": strconv.Itoa(k.AnarchyAt()),
			},
		})
	}

	return Outcome{
		Patch:  domain.Patch{Unrest: domain.IntPtr(unrest)},
		Events: events,
	}, nil
}
