package domain

import "testing"

// TestClassifyWeatherCode_Ranges tests the category assigned to each code range
func TestClassifyWeatherCode_Ranges(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected Condition
	}{
		{name: "clear sky", code: 0, expected: ConditionClear},
		{name: "few clouds", code: 1, expected: ConditionClouds},
		{name: "scattered clouds", code: 2, expected: ConditionClouds},
		{name: "overcast", code: 3, expected: ConditionClouds},
		{name: "start of fog range", code: 4, expected: ConditionFog},
		{name: "fog", code: 45, expected: ConditionFog},
		{name: "depositing rime fog", code: 48, expected: ConditionFog},
		{name: "end of fog range", code: 49, expected: ConditionFog},
		{name: "start of rain range", code: 50, expected: ConditionRain},
		{name: "light drizzle", code: 51, expected: ConditionRain},
		{name: "moderate rain", code: 61, expected: ConditionRain},
		{name: "end of rain range", code: 69, expected: ConditionRain},
		{name: "start of snow range", code: 70, expected: ConditionSnow},
		{name: "snow fall", code: 73, expected: ConditionSnow},
		{name: "end of snow range", code: 79, expected: ConditionSnow},
		{name: "start of thunderstorm range", code: 80, expected: ConditionThunderstorm},
		{name: "thunderstorm", code: 95, expected: ConditionThunderstorm},
		{name: "end of thunderstorm range", code: 99, expected: ConditionThunderstorm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyWeatherCode(tt.code)
			if result != tt.expected {
				t.Errorf("ClassifyWeatherCode(%d) = %q, want %q", tt.code, result, tt.expected)
			}
		})
	}
}

// TestClassifyWeatherCode_OutOfRange tests that codes outside 0..99 fall back to Clear
func TestClassifyWeatherCode_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{name: "negative code", code: -1},
		{name: "large negative code", code: -100},
		{name: "just above range", code: 100},
		{name: "far above range", code: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyWeatherCode(tt.code)
			if result != ConditionClear {
				t.Errorf("ClassifyWeatherCode(%d) = %q, want %q", tt.code, result, ConditionClear)
			}
		})
	}
}

// TestCondition_Description tests the fixed display text per category
func TestCondition_Description(t *testing.T) {
	tests := []struct {
		condition Condition
		expected  string
	}{
		{condition: ConditionClear, expected: "Clear sky"},
		{condition: ConditionClouds, expected: "Partly cloudy"},
		{condition: ConditionFog, expected: "Foggy"},
		{condition: ConditionRain, expected: "Rainy"},
		{condition: ConditionSnow, expected: "Snowy"},
		{condition: ConditionThunderstorm, expected: "Thunderstorm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			result := tt.condition.Description()
			if result != tt.expected {
				t.Errorf("Description() = %q, want %q", result, tt.expected)
			}
		})
	}
}

// TestCondition_DescriptionUnknown tests the fallback for an unrecognized value
func TestCondition_DescriptionUnknown(t *testing.T) {
	result := Condition("Hurricane").Description()
	if result != "Clear sky" {
		t.Errorf("Description() = %q, want %q", result, "Clear sky")
	}
}

// TestCondition_Icon tests the fixed icon name per category
func TestCondition_Icon(t *testing.T) {
	tests := []struct {
		condition Condition
		expected  string
	}{
		{condition: ConditionClear, expected: "sunny"},
		{condition: ConditionClouds, expected: "partly_cloudy_day"},
		{condition: ConditionFog, expected: "foggy"},
		{condition: ConditionRain, expected: "rainy"},
		{condition: ConditionSnow, expected: "weather_snowy"},
		{condition: ConditionThunderstorm, expected: "thunderstorm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			result := tt.condition.Icon()
			if result != tt.expected {
				t.Errorf("Icon() = %q, want %q", result, tt.expected)
			}
		})
	}
}

// TestCondition_IconUnknown tests the fallback for an unrecognized value
func TestCondition_IconUnknown(t *testing.T) {
	result := Condition("Hurricane").Icon()
	if result != "thermostat" {
		t.Errorf("Icon() = %q, want %q", result, "thermostat")
	}
}
