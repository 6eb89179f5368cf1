// Package domain holds the kingdom root aggregate and the pure
// bookkeeping rules that operate on it.
package domain

import (
	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
)

// Kingdom level bounds.
const (
	LevelMin = 1
	LevelMax = 20
)

// Unrest thresholds.
const (
	// UnrestRuinThreshold is the unrest value at which ruin starts
	// accruing and hex loss is checked.
	UnrestRuinThreshold = 10
	// AnarchyThreshold is the default unrest value at which the
	// kingdom falls into anarchy.
	AnarchyThreshold = 20
	// AnarchyThresholdEndure replaces AnarchyThreshold while the
	// Endure Anarchy feat is present.
	AnarchyThresholdEndure = 24
	// HexLossDC is the flat check DC rolled when unrest reaches the
	// ruin threshold.
	HexLossDC = 11
)

// Feats with mechanical effects on the turn economy.
const (
	FeatInsiderTrading = "Insider Trading"
	FeatEndureAnarchy  = "Endure Anarchy"
)

// RPPerMissingFood is the resource-point price offered per missing
// unit of food during consumption.
const RPPerMissingFood = 5

// Commodities is a quantity per trackable commodity. Values are
// conceptually non-negative but may go transiently negative while a
// delta is being computed, before clamping.
type Commodities struct {
	Food     int `yaml:"food,omitempty" json:"food,omitempty"`
	Luxuries int `yaml:"luxuries,omitempty" json:"luxuries,omitempty"`
	Ore      int `yaml:"ore,omitempty" json:"ore,omitempty"`
	Lumber   int `yaml:"lumber,omitempty" json:"lumber,omitempty"`
	Stone    int `yaml:"stone,omitempty" json:"stone,omitempty"`
}

// Add returns the field-wise sum of two commodity maps.
func (c Commodities) Add(other Commodities) Commodities {
	return Commodities{
		Food:     c.Food + other.Food,
		Luxuries: c.Luxuries + other.Luxuries,
		Ore:      c.Ore + other.Ore,
		Lumber:   c.Lumber + other.Lumber,
		Stone:    c.Stone + other.Stone,
	}
}

// CommodityColumns stages commodity quantities for the current turn
// and the next turn. Now and Next are never summed directly outside
// the end-turn transition; capacity clamps apply only to Now.
type CommodityColumns struct {
	Now  Commodities
	Next Commodities
}

// Columns stages an integer counter for the current and next turn.
type Columns struct {
	Now  int
	Next int
}

// Consumption tracks upkeep owed by the kingdom and its armies.
type Consumption struct {
	Now    int
	Next   int
	Armies int
}

// RuinCounter is one long-term ruin track.
type RuinCounter struct {
	Value int
}

// Ruin groups the four ruin tracks.
type Ruin struct {
	Crime      RuinCounter
	Decay      RuinCounter
	Corruption RuinCounter
	Strife     RuinCounter
}

// Total sums all four ruin tracks.
func (r Ruin) Total() int {
	return r.Crime.Value + r.Decay.Value + r.Corruption.Value + r.Strife.Value
}

// WorkSite is one category of claimed resource site. Quantity counts
// claimed hexes; Resources counts bonus-yield hexes within them.
type WorkSite struct {
	Quantity  int
	Resources int
}

// Yield is the raw commodity output of the site for one turn.
func (w WorkSite) Yield() int {
	return w.Quantity + w.Resources
}

// WorkSites groups the claimed site categories.
type WorkSites struct {
	Mines         WorkSite
	LumberCamps   WorkSite
	LuxurySources WorkSite
}

// Kingdom is the root aggregate for one campaign's player kingdom.
// It is mutated only through committed turn-step patches.
type Kingdom struct {
	ID    string
	Name  string
	Level int
	Size  int // Claimed hexes; drives resource die and base capacity
	AtWar bool

	Commodities    CommodityColumns
	ResourcePoints Columns
	ResourceDice   Columns
	Consumption    Consumption
	Unrest         int
	Ruin           Ruin
	WorkSites      WorkSites

	TurnsWithoutEvent int
	Feats             []string
	BonusFeats        []string
	SkillRanks        map[string]int
}

// Validate reports whether the kingdom record is well formed.
func (k Kingdom) Validate() error {
	if k.Name == "" {
		return apperrors.New(apperrors.CodeKingdomNameEmpty, "kingdom name cannot be empty")
	}
	if k.Level < LevelMin || k.Level > LevelMax {
		return apperrors.New(apperrors.CodeKingdomInvalidLevel, "kingdom level out of range")
	}
	if k.Size < 0 {
		return apperrors.New(apperrors.CodeKingdomInvalidSize, "kingdom size cannot be negative")
	}
	return nil
}

// HasFeat reports whether the kingdom has the named feat, either
// chosen or granted as a bonus feat.
func (k Kingdom) HasFeat(name string) bool {
	for _, feat := range k.Feats {
		if feat == name {
			return true
		}
	}
	for _, feat := range k.BonusFeats {
		if feat == name {
			return true
		}
	}
	return false
}

// BonusResourceDice returns extra resource dice granted by feats.
func (k Kingdom) BonusResourceDice() int {
	if k.HasFeat(FeatInsiderTrading) {
		return 1
	}
	return 0
}

// AnarchyAt returns the unrest value at which the kingdom falls into
// anarchy, accounting for feats.
func (k Kingdom) AnarchyAt() int {
	if k.HasFeat(FeatEndureAnarchy) {
		return AnarchyThresholdEndure
	}
	return AnarchyThreshold
}

// SkillRank returns the kingdom's recorded proficiency rank for a
// skill and whether the skill is tracked at all.
func (k Kingdom) SkillRank(skill string) (int, bool) {
	rank, ok := k.SkillRanks[skill]
	return rank, ok
}
