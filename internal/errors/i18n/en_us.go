package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeKingdomNameEmpty         = "KINGDOM_NAME_EMPTY"
	CodeKingdomInvalidLevel      = "KINGDOM_INVALID_LEVEL"
	CodeKingdomInvalidSize       = "KINGDOM_INVALID_SIZE"
	CodeUnhandledResourceType    = "KINGDOM_UNHANDLED_RESOURCE_TYPE"
	CodeMissingSkill             = "KINGDOM_MISSING_SKILL"
	CodeInsufficientResources    = "KINGDOM_INSUFFICIENT_RESOURCES"
	CodeSettlementEmptyKingdomID = "SETTLEMENT_EMPTY_KINGDOM_ID"
	CodeSettlementInvalidLevel   = "SETTLEMENT_INVALID_LEVEL"
	CodeStructureInvalid         = "STRUCTURE_INVALID"
	CodeStructureNotInCatalog    = "STRUCTURE_NOT_IN_CATALOG"
	CodeStructureNotProficient   = "STRUCTURE_NOT_PROFICIENT"
	CodeNotFound                 = "NOT_FOUND"
	CodeDiceMissing              = "DICE_MISSING"
	CodeDiceInvalidSpec          = "DICE_INVALID_SPEC"
	CodeDiceInvalidFormula       = "DICE_INVALID_FORMULA"
	CodeSeedOutOfRange           = "SEED_OUT_OF_RANGE"
)

var enUSCatalog = NewCatalog("en-US", map[Code]string{
	// Kingdom errors
	CodeKingdomNameEmpty:      "Kingdom name cannot be empty",
	CodeKingdomInvalidLevel:   "Kingdom level must be between 1 and 20",
	CodeKingdomInvalidSize:    "Kingdom size must be non-negative",
	CodeUnhandledResourceType: "Unhandled resource type: {{.Type}}",
	CodeMissingSkill:          "The kingdom is not trained in {{.Skill}}",
	CodeInsufficientResources: "Insufficient {{.Resource}}: have {{.Have}}, need {{.Need}}",

	// Settlement/structure errors
	CodeSettlementEmptyKingdomID: "Kingdom ID is required for settlement",
	CodeSettlementInvalidLevel:   "Settlement level must be at least 1",
	CodeStructureInvalid:         "Structure record {{.Structure}} failed validation",
	CodeStructureNotInCatalog:    "Structure {{.Structure}} is not in the catalog",
	CodeStructureNotProficient:   "The kingdom lacks the proficiency to build {{.Structure}}",

	// Storage errors
	CodeNotFound: "The requested record was not found",

	// Dice/mechanics errors
	CodeDiceMissing:        "At least one die must be specified",
	CodeDiceInvalidSpec:    "Dice must have positive sides and count",
	CodeDiceInvalidFormula: "Formula {{.Formula}} is not valid dice notation",

	// Random/seed errors
	CodeSeedOutOfRange: "Random seed is out of valid range",
})
