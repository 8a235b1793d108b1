package domain

import "testing"

// TestLocation_DisplayName tests name, country formatting
func TestLocation_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		expected string
	}{
		{
			name:     "name with country",
			location: Location{Name: "Berlin", Country: "Germany"},
			expected: "Berlin, Germany",
		},
		{
			name:     "name only",
			location: Location{Name: "Atlantis"},
			expected: "Atlantis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.location.DisplayName()
			if result != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", result, tt.expected)
			}
		})
	}
}
