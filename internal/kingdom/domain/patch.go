package domain

// Patch is a partial kingdom update. Nil fields are left untouched;
// set fields replace the corresponding top-level group wholesale, so
// callers must fully reconstruct any nested group they touch. This is
// the shallow-merge contract shared with the persistence layer.
type Patch struct {
	Name  *string
	Level *int
	Size  *int
	AtWar *bool

	Commodities    *CommodityColumns
	ResourcePoints *Columns
	ResourceDice   *Columns
	Consumption    *Consumption
	Unrest         *int
	Ruin           *Ruin
	WorkSites      *WorkSites

	TurnsWithoutEvent *int
	Feats             *[]string
	BonusFeats        *[]string
	SkillRanks        *map[string]int
}

// IsZero reports whether the patch carries no changes.
func (p Patch) IsZero() bool {
	return p == Patch{}
}

// Apply merges the patch into a copy of the kingdom and returns it.
func (p Patch) Apply(k Kingdom) Kingdom {
	if p.Name != nil {
		k.Name = *p.Name
	}
	if p.Level != nil {
		k.Level = *p.Level
	}
	if p.Size != nil {
		k.Size = *p.Size
	}
	if p.AtWar != nil {
		k.AtWar = *p.AtWar
	}
	if p.Commodities != nil {
		k.Commodities = *p.Commodities
	}
	if p.ResourcePoints != nil {
		k.ResourcePoints = *p.ResourcePoints
	}
	if p.ResourceDice != nil {
		k.ResourceDice = *p.ResourceDice
	}
	if p.Consumption != nil {
		k.Consumption = *p.Consumption
	}
	if p.Unrest != nil {
		k.Unrest = *p.Unrest
	}
	if p.Ruin != nil {
		k.Ruin = *p.Ruin
	}
	if p.WorkSites != nil {
		k.WorkSites = *p.WorkSites
	}
	if p.TurnsWithoutEvent != nil {
		k.TurnsWithoutEvent = *p.TurnsWithoutEvent
	}
	if p.Feats != nil {
		k.Feats = *p.Feats
	}
	if p.BonusFeats != nil {
		k.BonusFeats = *p.BonusFeats
	}
	if p.SkillRanks != nil {
		k.SkillRanks = *p.SkillRanks
	}
	return k
}

// IntPtr returns a pointer to v, for building patches.
func IntPtr(v int) *int { return &v }

// StringPtr returns a pointer to v, for building patches.
func StringPtr(v string) *string { return &v }

// BoolPtr returns a pointer to v, for building patches.
func BoolPtr(v bool) *bool { return &v }
