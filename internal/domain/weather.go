package domain

import "time"

// Condition is the coarse weather category derived from a WMO weather code
type Condition string

// Weather categories, one per classified code range
const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionFog          Condition = "Fog"
	ConditionRain         Condition = "Rain"
	ConditionSnow         Condition = "Snow"
	ConditionThunderstorm Condition = "Thunderstorm"
)

// conditionDescriptions maps each category to its one-line display text
var conditionDescriptions = map[Condition]string{
	ConditionClear:        "Clear sky",
	ConditionClouds:       "Partly cloudy",
	ConditionFog:          "Foggy",
	ConditionRain:         "Rainy",
	ConditionSnow:         "Snowy",
	ConditionThunderstorm: "Thunderstorm",
}

// conditionIcons maps each category to a fixed icon name
var conditionIcons = map[Condition]string{
	ConditionClear:        "sunny",
	ConditionClouds:       "partly_cloudy_day",
	ConditionFog:          "foggy",
	ConditionRain:         "rainy",
	ConditionSnow:         "weather_snowy",
	ConditionThunderstorm: "thunderstorm",
}

// ClassifyWeatherCode maps a WMO weather code to its category. Ranges are
// evaluated in order, first match wins; codes outside the documented
// 0..99 space fall back to Clear.
func ClassifyWeatherCode(code int) Condition {
	if code < 0 || code > 99 {
		return ConditionClear
	}

	switch {
	case code == 0:
		return ConditionClear
	case code <= 3:
		return ConditionClouds
	case code <= 49:
		return ConditionFog
	case code <= 69:
		return ConditionRain
	case code <= 79:
		return ConditionSnow
	default:
		return ConditionThunderstorm
	}
}

// Description returns the fixed one-line text for the category
func (c Condition) Description() string {
	if desc, ok := conditionDescriptions[c]; ok {
		return desc
	}
	return "Clear sky"
}

// Icon returns the fixed icon name for the category, with a neutral
// fallback for unrecognized values
func (c Condition) Icon() string {
	if icon, ok := conditionIcons[c]; ok {
		return icon
	}
	return "thermostat"
}

// Weather is the normalized current-conditions snapshot for a resolved city.
// Temperatures and wind speed are rounded to integers; humidity is carried
// as returned by the forecast provider. Metric units throughout.
type Weather struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	CountryCode string    `json:"country_code,omitempty"`
	Temperature int       `json:"temperature"`
	FeelsLike   int       `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	WindSpeed   int       `json:"wind_speed"`
	Condition   Condition `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	WeatherCode int       `json:"weather_code"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Timestamp   time.Time `json:"timestamp"`
}

// WeatherResponse wraps weather data with metadata
type WeatherResponse struct {
	Data    *Weather `json:"data,omitempty"`
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
}
