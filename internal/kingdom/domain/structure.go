package domain

// Structure traits.
const (
	TraitResidential    = "residential"
	TraitInfrastructure = "infrastructure"
	TraitYard           = "yard"
	TraitEdifice        = "edifice"
)

// ConstructionCosts is the price of placing a structure, paid from the
// current turn's columns. Absent costs are zero.
type ConstructionCosts struct {
	RP       int `yaml:"rp" json:"rp"`
	Lumber   int `yaml:"lumber" json:"lumber"`
	Ore      int `yaml:"ore" json:"ore"`
	Stone    int `yaml:"stone" json:"stone"`
	Luxuries int `yaml:"luxuries" json:"luxuries"`
}

// Construction holds the requirements for building a structure.
type Construction struct {
	DC     int                `yaml:"dc" json:"dc"`
	Skills []SkillRequirement `yaml:"skills" json:"skills"`
	Costs  ConstructionCosts  `yaml:"costs" json:"costs"`
}

// SkillRequirement is one proficiency gate on a construction check.
type SkillRequirement struct {
	Skill string `yaml:"skill" json:"skill"`
	Rank  int    `yaml:"rank" json:"rank"`
}

// BonusRule grants an item or skill bonus scoped to an activity tag.
type BonusRule struct {
	Activity string `yaml:"activity" json:"activity"`
	Skill    string `yaml:"skill,omitempty" json:"skill,omitempty"`
	Value    int    `yaml:"value" json:"value"`
}

// Structure is an immutable per-placement building record. Instances
// are supplied by the settlement data source and are read-only inputs
// to aggregation.
type Structure struct {
	Name         string        `yaml:"name" json:"name"`
	Traits       []string      `yaml:"traits,omitempty" json:"traits,omitempty"`
	Lots         int           `yaml:"lots" json:"lots"`
	Construction *Construction `yaml:"construction,omitempty" json:"construction,omitempty"`

	// Storage is the structure's commodity storage contribution.
	Storage Commodities `yaml:"storage,omitempty" json:"storage,omitempty"`
	// ConsumptionReduction lowers the settlement's upkeep.
	ConsumptionReduction int `yaml:"consumptionReduction,omitempty" json:"consumptionReduction,omitempty"`

	IncreaseLeadershipActivities bool `yaml:"increaseLeadershipActivities,omitempty" json:"increaseLeadershipActivities,omitempty"`
	ReducesUnrest                bool `yaml:"reducesUnrest,omitempty" json:"reducesUnrest,omitempty"`
	ReducesRuin                  bool `yaml:"reducesRuin,omitempty" json:"reducesRuin,omitempty"`
	AffectsEvents                bool `yaml:"affectsEvents,omitempty" json:"affectsEvents,omitempty"`
	AffectsDowntime              bool `yaml:"affectsDowntime,omitempty" json:"affectsDowntime,omitempty"`

	Bonuses []BonusRule `yaml:"bonuses,omitempty" json:"bonuses,omitempty"`
}

// HasTrait reports whether the structure carries the named trait.
func (s Structure) HasTrait(trait string) bool {
	for _, t := range s.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// Costs returns the construction costs, zero when the structure has
// no construction data.
func (s Structure) Costs() ConstructionCosts {
	if s.Construction == nil {
		return ConstructionCosts{}
	}
	return s.Construction.Costs
}

// SkillRequirements returns the construction proficiency gates, nil
// when the structure has no construction data.
func (s Structure) SkillRequirements() []SkillRequirement {
	if s.Construction == nil {
		return nil
	}
	return s.Construction.Skills
}
