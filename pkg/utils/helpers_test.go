package utils

import "testing"

// TestRoundToInt tests half-away-from-zero rounding for display values
func TestRoundToInt(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{name: "round down", value: 21.4, expected: 21},
		{name: "round up", value: 21.6, expected: 22},
		{name: "half rounds away from zero", value: 21.5, expected: 22},
		{name: "negative round down", value: -4.4, expected: -4},
		{name: "negative half rounds away from zero", value: -4.5, expected: -5},
		{name: "whole number", value: 12.0, expected: 12},
		{name: "zero", value: 0.0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundToInt(tt.value)
			if result != tt.expected {
				t.Errorf("RoundToInt(%v) = %d, want %d", tt.value, result, tt.expected)
			}
		})
	}
}
