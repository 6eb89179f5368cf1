// Package settlement derives structure-driven bonuses for settlement
// locations and merges them into kingdom-wide totals. Aggregates are
// ephemeral: recomputed on demand, never persisted.
package settlement

import (
	"sort"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// BaseLeadershipActivities is the leadership-activity allowance every
// settlement starts from.
const BaseLeadershipActivities = 2

// Type names a settlement size category, derived from level.
type Type string

// Settlement types.
const (
	TypeVillage    Type = "village"
	TypeTown       Type = "town"
	TypeCity       Type = "city"
	TypeMetropolis Type = "metropolis"
)

// TypeForLevel maps a settlement level to its size category.
func TypeForLevel(level int) Type {
	switch {
	case level >= 10:
		return TypeMetropolis
	case level >= 5:
		return TypeCity
	case level >= 2:
		return TypeTown
	default:
		return TypeVillage
	}
}

// BaseConsumption is the upkeep owed by a settlement of the given
// category before structure reductions.
func BaseConsumption(t Type) int {
	switch t {
	case TypeMetropolis:
		return 6
	case TypeCity:
		return 4
	case TypeTown:
		return 2
	default:
		return 1
	}
}

// Aggregate is the derived combination of structure effects for one
// or more locations.
type Aggregate struct {
	LeadershipActivities int
	Consumption          int
	Storage              domain.Commodities
	UnlockedActivities   map[string]struct{}
}

// New returns the zero aggregate: no storage, no consumption, base
// leadership allowance, no unlocked activities.
func New() Aggregate {
	return Aggregate{
		LeadershipActivities: BaseLeadershipActivities,
		UnlockedActivities:   map[string]struct{}{},
	}
}

// Unlocks reports whether the aggregate unlocks the given activity.
func (a Aggregate) Unlocks(activity string) bool {
	_, ok := a.UnlockedActivities[activity]
	return ok
}

// Activities returns the unlocked activity tags in sorted order.
func (a Aggregate) Activities() []string {
	out := make([]string, 0, len(a.UnlockedActivities))
	for activity := range a.UnlockedActivities {
		out = append(out, activity)
	}
	sort.Strings(out)
	return out
}

// Evaluate folds the structures placed at one location into that
// location's aggregate. The fold is commutative and associative;
// duplicate structures fold independently, with no deduplication.
func Evaluate(structures []domain.Structure, level int) Aggregate {
	agg := New()
	reduction := 0

	for _, s := range structures {
		agg.Storage = agg.Storage.Add(s.Storage)
		reduction += s.ConsumptionReduction
		if s.IncreaseLeadershipActivities {
			agg.LeadershipActivities = 3
		}
		for _, bonus := range s.Bonuses {
			if bonus.Activity != "" {
				agg.UnlockedActivities[bonus.Activity] = struct{}{}
			}
		}
	}

	agg.Consumption = max(0, BaseConsumption(TypeForLevel(level))-reduction)
	return agg
}

// MergeCapital combines a secondary location's aggregate with the
// capital's. The local aggregate is authoritative for every numeric
// field and for storage; capital-only unlocked activities are unioned
// in. Capital effects propagate outward, local effects never
// propagate back to the capital.
func MergeCapital(capital, local Aggregate) Aggregate {
	merged := Aggregate{
		LeadershipActivities: local.LeadershipActivities,
		Consumption:          local.Consumption,
		Storage:              local.Storage,
		UnlockedActivities:   map[string]struct{}{},
	}
	for activity := range local.UnlockedActivities {
		merged.UnlockedActivities[activity] = struct{}{}
	}
	for activity := range capital.UnlockedActivities {
		merged.UnlockedActivities[activity] = struct{}{}
	}
	return merged
}

// Merge combines aggregates across locations into kingdom-wide
// totals: numeric fields sum, leadership takes the max, storage sums
// per commodity, activities union.
func Merge(aggregates []Aggregate) Aggregate {
	merged := New()
	merged.LeadershipActivities = BaseLeadershipActivities

	for _, agg := range aggregates {
		merged.Consumption += agg.Consumption
		merged.Storage = merged.Storage.Add(agg.Storage)
		if agg.LeadershipActivities > merged.LeadershipActivities {
			merged.LeadershipActivities = agg.LeadershipActivities
		}
		for activity := range agg.UnlockedActivities {
			merged.UnlockedActivities[activity] = struct{}{}
		}
	}
	return merged
}
