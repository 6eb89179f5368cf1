package random

import "testing"

func TestNewSeed_ProducesVariedSeeds(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 8; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed() error = %v", err)
		}
		seen[seed] = true
	}
	if len(seen) < 2 {
		t.Errorf("NewSeed() produced %d distinct values over 8 calls, want at least 2", len(seen))
	}
}
