package turn

import (
	"strconv"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// EndTurn rolls the staged next-turn columns over into the current
// turn. Resource dice, resource points, and consumption adopt their
// next value outright; commodities add next into now, clamp to
// capacity, and zero next. Army upkeep carries across turns.
func EndTurn(k domain.Kingdom, storage domain.Commodities) Outcome {
	points := domain.Columns{Now: k.ResourcePoints.Next}
	diceColumns := domain.Columns{Now: k.ResourceDice.Next}
	consumption := domain.Consumption{
		Now:    k.Consumption.Next,
		Armies: k.Consumption.Armies,
	}

	commodities := k.Commodities
	commodities.Now = clampCommodities(
		commodities.Now.Add(commodities.Next),
		capacityFor(k.SizeData(), storage),
	)
	commodities.Next = domain.Commodities{}

	return Outcome{
		Patch: domain.Patch{
			Commodities:    &commodities,
			ResourcePoints: &points,
			ResourceDice:   &diceColumns,
			Consumption:    &consumption,
		},
		Events: []Event{{
			Key: EventTurnEnded,
			Metadata: map[string]string{
				"Dice":        strconv.Itoa(diceColumns.Now),
				"Points":      strconv.Itoa(points.Now),
				"Consumption": strconv.Itoa(consumption.Now),
			},
		}},
	}
}
