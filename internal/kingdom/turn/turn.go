// Package turn implements the kingdom turn steps. Every step is a
// pure function from the current kingdom record to a single patch plus
// narration events; a dice failure aborts the step with no mutation,
// and it is the caller's job to commit the patch exactly once.
package turn

import (
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// Narration event keys emitted by the turn steps.
const (
	EventResourcesCollected   = "turn.resources.collected"
	EventCommoditiesYielded   = "turn.commodities.yielded"
	EventConsumptionPaid      = "turn.consumption.paid"
	EventConsumptionShortfall = "turn.consumption.shortfall"
	EventUnrestAdjusted       = "turn.unrest.adjusted"
	EventRuinAccrued          = "turn.ruin.accrued"
	EventHexLossChecked       = "turn.hexloss.checked"
	EventAnarchyWarning       = "turn.anarchy.warning"
	EventOccurred             = "turn.event.occurred"
	EventQuietTurn            = "turn.event.quiet"
	EventTurnEnded            = "turn.ended"
)

// Event is one structured narration entry. The key selects a catalog
// message and Metadata feeds its template variables.
type Event struct {
	Key      string
	Metadata map[string]string
}

// Outcome is the result of one turn step: the state change to commit
// and the narration to emit once committed.
type Outcome struct {
	Patch  domain.Patch
	Events []Event
}

// capacityFor returns the per-commodity storage ceiling: the
// kingdom-size base capacity plus aggregated settlement storage.
func capacityFor(data domain.SizeData, storage domain.Commodities) domain.Commodities {
	base := data.CommodityCapacity
	return domain.Commodities{
		Food:     base + storage.Food,
		Luxuries: base + storage.Luxuries,
		Ore:      base + storage.Ore,
		Lumber:   base + storage.Lumber,
		Stone:    base + storage.Stone,
	}
}

func clampCommodities(c, capacity domain.Commodities) domain.Commodities {
	return domain.Commodities{
		Food:     domain.ClampToCapacity(c.Food, capacity.Food),
		Luxuries: domain.ClampToCapacity(c.Luxuries, capacity.Luxuries),
		Ore:      domain.ClampToCapacity(c.Ore, capacity.Ore),
		Lumber:   domain.ClampToCapacity(c.Lumber, capacity.Lumber),
		Stone:    domain.ClampToCapacity(c.Stone, capacity.Stone),
	}
}
