package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultForecastBaseURL is the public forecast endpoint
const DefaultForecastBaseURL = "https://api.open-meteo.com/v1"

// currentFields lists the current-conditions variables requested from the
// forecast API, in the order the provider documents them
const currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m"

// CurrentConditions carries the raw current-weather values for a
// coordinate pair before normalization. Wind speed arrives in km/h.
type CurrentConditions struct {
	Temperature         float64
	ApparentTemperature float64
	RelativeHumidity    int
	WindSpeed           float64
	WeatherCode         int
}

// ForecastService fetches current conditions for resolved coordinates
type ForecastService struct {
	baseURL    string
	httpClient *http.Client
}

// NewForecastService creates a new forecast service
func NewForecastService(baseURL string) *ForecastService {
	if baseURL == "" {
		baseURL = DefaultForecastBaseURL
	}
	return &ForecastService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// forecastResponse represents the forecast API response
type forecastResponse struct {
	Current struct {
		Temperature         float64 `json:"temperature_2m"`
		RelativeHumidity    int     `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weather_code"`
		WindSpeed           float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// FetchCurrent requests current conditions for a coordinate pair
func (s *ForecastService) FetchCurrent(ctx context.Context, lat, lon float64) (CurrentConditions, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", lat))
	query.Set("longitude", fmt.Sprintf("%.4f", lon))
	query.Set("current", currentFields)

	reqURL := fmt.Sprintf("%s/forecast?%s", s.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return CurrentConditions{}, fmt.Errorf("forecast: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return CurrentConditions{}, fmt.Errorf("forecast: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CurrentConditions{}, fmt.Errorf("forecast: unexpected status %d", resp.StatusCode)
	}

	var fc forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return CurrentConditions{}, fmt.Errorf("forecast: failed to decode response: %w", err)
	}

	return CurrentConditions{
		Temperature:         fc.Current.Temperature,
		ApparentTemperature: fc.Current.ApparentTemperature,
		RelativeHumidity:    fc.Current.RelativeHumidity,
		WindSpeed:           fc.Current.WindSpeed,
		WeatherCode:         fc.Current.WeatherCode,
	}, nil
}
