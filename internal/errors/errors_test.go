package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs_MatchesByCode(t *testing.T) {
	base := New(CodeInsufficientResources, "insufficient food")
	other := WithMetadata(CodeInsufficientResources, "insufficient lumber", map[string]string{
		"Resource": "lumber",
	})

	if !errors.Is(other, base) {
		t.Errorf("errors.Is() = false, want true for matching codes")
	}

	mismatch := New(CodeNotFound, "kingdom not found")
	if errors.Is(mismatch, base) {
		t.Errorf("errors.Is() = true, want false for different codes")
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeNotFound, "load kingdom", cause)

	if !errors.Is(err, cause) {
		t.Errorf("wrapped error should match its cause")
	}
	if got := err.Error(); got != "load kingdom" {
		t.Errorf("Error() = %q, want %q", got, "load kingdom")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"domain error", New(CodeDiceMissing, "no dice"), CodeDiceMissing},
		{"wrapped domain error", fmt.Errorf("outer: %w", New(CodeMissingSkill, "no rank")), CodeMissingSkill},
		{"plain error", errors.New("boom"), CodeUnknown},
		{"nil error", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetMetadata(t *testing.T) {
	err := WithMetadata(CodeUnhandledResourceType, "unhandled", map[string]string{"Type": "mana"})
	meta := GetMetadata(err)
	if meta["Type"] != "mana" {
		t.Errorf("GetMetadata()[Type] = %q, want %q", meta["Type"], "mana")
	}
	if GetMetadata(errors.New("plain")) != nil {
		t.Errorf("GetMetadata() for plain error should be nil")
	}
}
