package turn

import (
	"context"
	"fmt"
	"strconv"

	"github.com/louisbranch/stolenlands.quest/internal/core/dice"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// CollectResources rolls the kingdom's resource dice into resource
// points and harvests work-site commodity yields.
//
// Dice rolled = size-tier base dice + stored resourceDice.now +
// feat bonus dice. The accumulated dice counter resets to zero once
// rolled. Raw yields add into the current commodity column; each
// yielded commodity is clamped to capacity, while food is untouched
// (collection never produces it).
//
// The ore and lumber yields both derive from mine sites and the stone
// yield derives from lumber camps. That mapping is carried over from
// the source data on purpose; TestCollectResourcesYieldMapping pins it.
func CollectResources(ctx context.Context, roller dice.Roller, k domain.Kingdom, storage domain.Commodities) (Outcome, error) {
	sizeData := k.SizeData()
	count := sizeData.BaseResourceDice + k.ResourceDice.Now + k.BonusResourceDice()

	total := 0
	if count > 0 {
		result, err := roller.Roll(ctx, fmt.Sprintf("%dd%d", count, sizeData.ResourceDieSides))
		if err != nil {
			return Outcome{}, err
		}
		total = result.Total
	}

	points := k.ResourcePoints
	points.Now += total
	diceColumns := k.ResourceDice
	diceColumns.Now = 0

	oreYield := k.WorkSites.Mines.Yield()
	lumberYield := k.WorkSites.Mines.Yield()
	stoneYield := k.WorkSites.LumberCamps.Yield()
	luxuriesYield := k.WorkSites.LuxurySources.Yield()

	capacity := capacityFor(sizeData, storage)
	commodities := k.Commodities
	commodities.Now.Ore = domain.ClampToCapacity(commodities.Now.Ore+oreYield, capacity.Ore)
	commodities.Now.Lumber = domain.ClampToCapacity(commodities.Now.Lumber+lumberYield, capacity.Lumber)
	commodities.Now.Stone = domain.ClampToCapacity(commodities.Now.Stone+stoneYield, capacity.Stone)
	commodities.Now.Luxuries = domain.ClampToCapacity(commodities.Now.Luxuries+luxuriesYield, capacity.Luxuries)

	events := []Event{{
		Key: EventResourcesCollected,
		Metadata: map[string]string{
			"Dice":   fmt.Sprintf("%dd%d", count, sizeData.ResourceDieSides),
			"Total":  strconv.Itoa(total),
			"Points": strconv.Itoa(points.Now),
		},
	}}
	if oreYield+lumberYield+stoneYield+luxuriesYield > 0 {
		events = append(events, Event{
			Key: EventCommoditiesYielded,
			Metadata: map[string]string{
				"Ore":      strconv.Itoa(oreYield),
				"Lumber":   strconv.Itoa(lumberYield),
				"Stone":    strconv.Itoa(stoneYield),
				"Luxuries": strconv.Itoa(luxuriesYield),
			},
		})
	}

	return Outcome{
		Patch: domain.Patch{
			Commodities:    &commodities,
			ResourcePoints: &points,
			ResourceDice:   &diceColumns,
		},
		Events: events,
	}, nil
}
