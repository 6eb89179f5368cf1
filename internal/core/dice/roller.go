package dice

import (
	"context"
	"math/rand"

	"github.com/louisbranch/stolenlands.quest/internal/random"
)

// FormulaResult carries the evaluated total of a dice formula along
// with the individual die results for narration.
type FormulaResult struct {
	Formula Formula
	Results []int
	Total   int
}

// Roller evaluates dice notation and returns a total. Implementations
// may block (e.g. on entropy); callers pass a context for cancellation.
type Roller interface {
	Roll(ctx context.Context, formula string) (FormulaResult, error)
}

// CryptoRoller rolls with a fresh crypto/rand seed per evaluation.
type CryptoRoller struct{}

// Roll evaluates the formula with a freshly generated seed.
func (CryptoRoller) Roll(ctx context.Context, formula string) (FormulaResult, error) {
	if err := ctx.Err(); err != nil {
		return FormulaResult{}, err
	}
	seed, err := random.NewSeed()
	if err != nil {
		return FormulaResult{}, err
	}
	rng := rand.New(rand.NewSource(seed))
	return evaluate(rng, formula)
}

// SeededRoller rolls from a fixed seed, consuming the pseudo-random
// stream across calls. It is intended for tests and replay.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a deterministic roller from a seed.
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll evaluates the formula against the seeded stream.
func (r *SeededRoller) Roll(ctx context.Context, formula string) (FormulaResult, error) {
	if err := ctx.Err(); err != nil {
		return FormulaResult{}, err
	}
	return evaluate(r.rng, formula)
}

func evaluate(rng *rand.Rand, formula string) (FormulaResult, error) {
	parsed, err := ParseFormula(formula)
	if err != nil {
		return FormulaResult{}, err
	}

	result, err := RollWithRng(rng, []Spec{{Sides: parsed.Sides, Count: parsed.Count}})
	if err != nil {
		return FormulaResult{}, err
	}

	return FormulaResult{
		Formula: parsed,
		Results: result.Rolls[0].Results,
		Total:   result.Total + parsed.Modifier,
	}, nil
}

var (
	_ Roller = CryptoRoller{}
	_ Roller = (*SeededRoller)(nil)
)
