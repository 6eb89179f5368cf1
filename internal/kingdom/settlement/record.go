package settlement

import (
	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
)

// Record is one settlement location as supplied by the settlement
// data source. Structures lists placed structure names resolved
// against the catalog.
type Record struct {
	ID                 string
	KingdomID          string
	Name               string
	Level              int
	IsCapital          bool
	Overcrowded        bool
	SecondaryTerritory bool
	Structures         []string
}

// Validate reports whether the settlement record is well formed.
func (r Record) Validate() error {
	if r.KingdomID == "" {
		return apperrors.New(apperrors.CodeSettlementEmptyKingdomID, "settlement requires a kingdom id")
	}
	if r.Level < 1 {
		return apperrors.New(apperrors.CodeSettlementInvalidLevel, "settlement level must be at least 1")
	}
	return nil
}

// Type returns the settlement's size category, derived from level.
func (r Record) Type() Type {
	return TypeForLevel(r.Level)
}
