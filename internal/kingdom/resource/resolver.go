// Package resource maps resource-type tags onto the kingdom record.
// The tag set is closed: Read and Write handle exactly the same tags,
// and an unknown tag is a programming defect surfaced as
// UnhandledResourceType, never a runtime condition to recover from.
package resource

import (
	"fmt"

	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// Type is a resource-type tag.
type Type string

// The closed set of resource tags.
const (
	TypeFood           Type = "food"
	TypeLuxuries       Type = "luxuries"
	TypeOre            Type = "ore"
	TypeLumber         Type = "lumber"
	TypeStone          Type = "stone"
	TypeUnrest         Type = "unrest"
	TypeResourceDice   Type = "resource-dice"
	TypeResourcePoints Type = "resource-points"
	// TypeRollResourceDice is an alias of resource-points: the
	// evaluated roll lands in the resource-point columns.
	TypeRollResourceDice Type = "roll-resource-dice"
	TypeCrime            Type = "crime"
	TypeDecay            Type = "decay"
	TypeStrife           Type = "strife"
	TypeCorruption       Type = "corruption"
)

// All returns every tag in the closed set.
func All() []Type {
	return []Type{
		TypeFood, TypeLuxuries, TypeOre, TypeLumber, TypeStone,
		TypeUnrest, TypeResourceDice, TypeResourcePoints,
		TypeRollResourceDice, TypeCrime, TypeDecay, TypeStrife,
		TypeCorruption,
	}
}

// TurnColumn selects the current or the staged ledger column.
type TurnColumn string

// Turn columns.
const (
	TurnNow  TurnColumn = "now"
	TurnNext TurnColumn = "next"
)

// Read returns the kingdom's current value for the tag. Unrest and
// the four ruin tags have no next-turn column and ignore turn.
func Read(k domain.Kingdom, t Type, turn TurnColumn) (int, error) {
	switch t {
	case TypeFood:
		return pick(k.Commodities.Now.Food, k.Commodities.Next.Food, turn), nil
	case TypeLuxuries:
		return pick(k.Commodities.Now.Luxuries, k.Commodities.Next.Luxuries, turn), nil
	case TypeOre:
		return pick(k.Commodities.Now.Ore, k.Commodities.Next.Ore, turn), nil
	case TypeLumber:
		return pick(k.Commodities.Now.Lumber, k.Commodities.Next.Lumber, turn), nil
	case TypeStone:
		return pick(k.Commodities.Now.Stone, k.Commodities.Next.Stone, turn), nil
	case TypeUnrest:
		return k.Unrest, nil
	case TypeResourceDice:
		return pick(k.ResourceDice.Now, k.ResourceDice.Next, turn), nil
	case TypeResourcePoints, TypeRollResourceDice:
		return pick(k.ResourcePoints.Now, k.ResourcePoints.Next, turn), nil
	case TypeCrime:
		return k.Ruin.Crime.Value, nil
	case TypeDecay:
		return k.Ruin.Decay.Value, nil
	case TypeStrife:
		return k.Ruin.Strife.Value, nil
	case TypeCorruption:
		return k.Ruin.Corruption.Value, nil
	default:
		return 0, unhandledTypeError(t)
	}
}

// Write stages the new value for the tag as a partial kingdom update.
// The handled tag set is identical to Read's, by contract.
func Write(k domain.Kingdom, t Type, turn TurnColumn, value int) (domain.Patch, error) {
	switch t {
	case TypeFood:
		commodities := k.Commodities
		*pickPtr(&commodities.Now.Food, &commodities.Next.Food, turn) = value
		return domain.Patch{Commodities: &commodities}, nil
	case TypeLuxuries:
		commodities := k.Commodities
		*pickPtr(&commodities.Now.Luxuries, &commodities.Next.Luxuries, turn) = value
		return domain.Patch{Commodities: &commodities}, nil
	case TypeOre:
		commodities := k.Commodities
		*pickPtr(&commodities.Now.Ore, &commodities.Next.Ore, turn) = value
		return domain.Patch{Commodities: &commodities}, nil
	case TypeLumber:
		commodities := k.Commodities
		*pickPtr(&commodities.Now.Lumber, &commodities.Next.Lumber, turn) = value
		return domain.Patch{Commodities: &commodities}, nil
	case TypeStone:
		commodities := k.Commodities
		*pickPtr(&commodities.Now.Stone, &commodities.Next.Stone, turn) = value
		return domain.Patch{Commodities: &commodities}, nil
	case TypeUnrest:
		return domain.Patch{Unrest: domain.IntPtr(value)}, nil
	case TypeResourceDice:
		columns := k.ResourceDice
		*pickPtr(&columns.Now, &columns.Next, turn) = value
		return domain.Patch{ResourceDice: &columns}, nil
	case TypeResourcePoints, TypeRollResourceDice:
		columns := k.ResourcePoints
		*pickPtr(&columns.Now, &columns.Next, turn) = value
		return domain.Patch{ResourcePoints: &columns}, nil
	case TypeCrime:
		ruin := k.Ruin
		ruin.Crime.Value = value
		return domain.Patch{Ruin: &ruin}, nil
	case TypeDecay:
		ruin := k.Ruin
		ruin.Decay.Value = value
		return domain.Patch{Ruin: &ruin}, nil
	case TypeStrife:
		ruin := k.Ruin
		ruin.Strife.Value = value
		return domain.Patch{Ruin: &ruin}, nil
	case TypeCorruption:
		ruin := k.Ruin
		ruin.Corruption.Value = value
		return domain.Patch{Ruin: &ruin}, nil
	default:
		return domain.Patch{}, unhandledTypeError(t)
	}
}

// Limit returns the capacity ceiling for the tag, or nil when the
// (type, turn) combination is uncapped. Only the five commodity tags
// are capped, and only on the next-turn column; the ceiling is the
// kingdom-size base capacity plus aggregated settlement storage.
func Limit(k domain.Kingdom, storage domain.Commodities, t Type, turn TurnColumn) *int {
	if turn != TurnNext {
		return nil
	}

	base := k.SizeData().CommodityCapacity
	switch t {
	case TypeFood:
		return domain.IntPtr(base + storage.Food)
	case TypeLuxuries:
		return domain.IntPtr(base + storage.Luxuries)
	case TypeOre:
		return domain.IntPtr(base + storage.Ore)
	case TypeLumber:
		return domain.IntPtr(base + storage.Lumber)
	case TypeStone:
		return domain.IntPtr(base + storage.Stone)
	default:
		return nil
	}
}

// IsCommodity reports whether the tag is one of the five commodities.
func IsCommodity(t Type) bool {
	switch t {
	case TypeFood, TypeLuxuries, TypeOre, TypeLumber, TypeStone:
		return true
	default:
		return false
	}
}

func pick(now, next int, turn TurnColumn) int {
	if turn == TurnNext {
		return next
	}
	return now
}

func pickPtr(now, next *int, turn TurnColumn) *int {
	if turn == TurnNext {
		return next
	}
	return now
}

func unhandledTypeError(t Type) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.CodeUnhandledResourceType,
		fmt.Sprintf("unhandled resource type: %s", t),
		map[string]string{"Type": string(t)},
	)
}
