package utils

import "testing"

// TestNewID tests that generated IDs are well-formed and unique
func TestNewID(t *testing.T) {
	first := NewID()
	second := NewID()

	if len(first) != 36 {
		t.Errorf("NewID() length = %d, want 36", len(first))
	}
	if first == second {
		t.Errorf("NewID() returned the same value twice: %q", first)
	}
}
