// Package dice provides deterministic dice rolling and dice-notation
// parsing for the kingdom engine.
package dice

import (
	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
)

var (
	// ErrMissingDice indicates that no dice specs were provided.
	ErrMissingDice = apperrors.New(apperrors.CodeDiceMissing, "at least one dice spec is required")
	// ErrInvalidDiceSpec indicates a dice spec with non-positive sides or count.
	ErrInvalidDiceSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice spec must have positive sides and count")
)

// Spec describes a homogeneous group of dice to roll.
type Spec struct {
	Sides int // Number of sides per die
	Count int // Number of dice to roll
}

// Request describes a dice roll with a deterministic seed.
type Request struct {
	Dice []Spec
	Seed int64
}

// Roll holds the results for one Spec within a Result.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result holds the outcome of a dice roll request.
type Result struct {
	Rolls []Roll
	Total int
}
