package domain

import "testing"

func TestApplyDelta_Gain(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		want    int
	}{
		{"simple gain", 3, 4, 7},
		{"gain from zero", 0, 5, 5},
		{"zero delta", 6, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDelta(tt.current, tt.delta, DeltaGain, nil)
			if got.Value != tt.want {
				t.Errorf("ApplyDelta() value = %d, want %d", got.Value, tt.want)
			}
			if got.Missing != 0 {
				t.Errorf("ApplyDelta() missing = %d, want 0 on gain", got.Missing)
			}
		})
	}
}

func TestApplyDelta_Lose(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		delta       int
		wantValue   int
		wantMissing int
	}{
		{"covered loss", 7, 4, 3, 0},
		{"exact loss", 4, 4, 0, 0},
		{"shortfall", 2, 5, -3, 3},
		{"loss from zero", 0, 3, -3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDelta(tt.current, tt.delta, DeltaLose, nil)
			if got.Value != tt.wantValue {
				t.Errorf("ApplyDelta() value = %d, want %d", got.Value, tt.wantValue)
			}
			if got.Missing != tt.wantMissing {
				t.Errorf("ApplyDelta() missing = %d, want %d", got.Missing, tt.wantMissing)
			}
		})
	}
}

func TestApplyDelta_LimitIsFloor(t *testing.T) {
	zero := 0

	got := ApplyDelta(2, 5, DeltaLose, &zero)
	if got.Value != 0 {
		t.Errorf("ApplyDelta() value = %d, want floored 0", got.Value)
	}
	if got.Missing != 3 {
		t.Errorf("ApplyDelta() missing = %d, want 3", got.Missing)
	}

	// The limit floors gains too: max(limit, current+delta).
	ten := 10
	got = ApplyDelta(3, 2, DeltaGain, &ten)
	if got.Value != 10 {
		t.Errorf("ApplyDelta() value = %d, want max(10, 5) = 10", got.Value)
	}
}

func TestApplyDelta_Idempotent(t *testing.T) {
	zero := 0
	once := ApplyDelta(2, 5, DeltaLose, &zero)
	again := ApplyDelta(once.Value, 0, DeltaLose, &zero)
	if again.Value != once.Value {
		t.Errorf("reapplying with a zero delta changed the value: %d -> %d", once.Value, again.Value)
	}
}

func TestClampToCapacity(t *testing.T) {
	if got := ClampToCapacity(12, 8); got != 8 {
		t.Errorf("ClampToCapacity(12, 8) = %d, want 8", got)
	}
	if got := ClampToCapacity(5, 8); got != 5 {
		t.Errorf("ClampToCapacity(5, 8) = %d, want 5", got)
	}
}
