// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Kingdom errors
	CodeKingdomNameEmpty      Code = "KINGDOM_NAME_EMPTY"
	CodeKingdomInvalidLevel   Code = "KINGDOM_INVALID_LEVEL"
	CodeKingdomInvalidSize    Code = "KINGDOM_INVALID_SIZE"
	CodeUnhandledResourceType Code = "KINGDOM_UNHANDLED_RESOURCE_TYPE"
	CodeMissingSkill          Code = "KINGDOM_MISSING_SKILL"
	CodeInsufficientResources Code = "KINGDOM_INSUFFICIENT_RESOURCES"

	// Settlement/structure errors
	CodeSettlementEmptyKingdomID Code = "SETTLEMENT_EMPTY_KINGDOM_ID"
	CodeSettlementInvalidLevel   Code = "SETTLEMENT_INVALID_LEVEL"
	CodeStructureInvalid         Code = "STRUCTURE_INVALID"
	CodeStructureNotInCatalog    Code = "STRUCTURE_NOT_IN_CATALOG"
	CodeStructureNotProficient   Code = "STRUCTURE_NOT_PROFICIENT"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Dice/mechanics errors
	CodeDiceMissing        Code = "DICE_MISSING"
	CodeDiceInvalidSpec    Code = "DICE_INVALID_SPEC"
	CodeDiceInvalidFormula Code = "DICE_INVALID_FORMULA"

	// Random/seed errors
	CodeSeedOutOfRange Code = "SEED_OUT_OF_RANGE"
)
