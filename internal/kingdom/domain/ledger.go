package domain

// DeltaMode selects the direction of a ledger delta.
type DeltaMode string

// Delta modes.
const (
	DeltaGain DeltaMode = "gain"
	DeltaLose DeltaMode = "lose"
)

// DeltaResult is the outcome of applying a delta to a ledger value.
type DeltaResult struct {
	// Value is the new ledger value after the delta and optional floor.
	Value int
	// Missing is the shortfall when losing more than is available.
	// Always zero when gaining.
	Missing int
}

// ApplyDelta computes the next value for a trackable resource.
//
// When limit is non-nil the result is floored at *limit: callers pass
// the negative-allowed floor for the ledger column. Capacity
// enforcement for positive overflow is applied separately by the
// caller when writing into storage, via min(capacity, value).
//
// The Missing amount is computed for every lose delta; only callers
// operating on the current turn's column surface it.
func ApplyDelta(current, delta int, mode DeltaMode, limit *int) DeltaResult {
	value := current + delta
	missing := 0
	if mode == DeltaLose {
		value = current - delta
		missing = max(0, delta-current)
	}
	if limit != nil {
		value = max(*limit, value)
	}
	return DeltaResult{Value: value, Missing: missing}
}

// ClampToCapacity applies the positive-overflow half of the storage
// contract: values above capacity are reduced to it.
func ClampToCapacity(value, capacity int) int {
	return min(capacity, value)
}
