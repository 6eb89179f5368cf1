package turn

import (
	"strconv"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// PayConsumption settles the turn's food upkeep. Total consumption is
// army upkeep plus the kingdom's current consumption plus the
// aggregated settlement consumption. Food pays as much of it as it
// can; a shortfall is reported with its resource-point price, never
// auto-remedied.
func PayConsumption(k domain.Kingdom, settlementConsumption int) Outcome {
	total := k.Consumption.Armies + k.Consumption.Now + settlementConsumption
	food := k.Commodities.Now.Food
	paid := min(food, total)
	shortfall := max(0, total-food)

	commodities := k.Commodities
	commodities.Now.Food = food - paid

	events := []Event{{
		Key: EventConsumptionPaid,
		Metadata: map[string]string{
			"Total": strconv.Itoa(total),
			"Paid":  strconv.Itoa(paid),
			"Food":  strconv.Itoa(commodities.Now.Food),
		},
	}}
	if shortfall > 0 {
		events = append(events, Event{
			Key: EventConsumptionShortfall,
			Metadata: map[string]string{
				"Shortfall": strconv.Itoa(shortfall),
				"Price":     strconv.Itoa(shortfall * domain.RPPerMissingFood),
			},
		})
	}

	return Outcome{
		Patch:  domain.Patch{Commodities: &commodities},
		Events: events,
	}
}
