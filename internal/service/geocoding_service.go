package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/citycast/backend/internal/domain"
)

// DefaultGeocodingBaseURL is the public geocoding endpoint
const DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"

// GeocodingService resolves free-text city names to coordinates
type GeocodingService struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(baseURL string) *GeocodingService {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}
	return &GeocodingService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// geocodingResponse represents the geocoding API response
type geocodingResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Country     string  `json:"country"`
		CountryCode string  `json:"country_code"`
	} `json:"results"`
}

// ResolveCity looks up a city name, requesting a single best match.
// An empty results array maps to domain.ErrCityNotFound.
func (s *GeocodingService) ResolveCity(ctx context.Context, city string) (domain.Location, error) {
	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "1")
	query.Set("language", "en")
	query.Set("format", "json")

	reqURL := fmt.Sprintf("%s/search?%s", s.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocoding: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocoding: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, fmt.Errorf("geocoding: unexpected status %d", resp.StatusCode)
	}

	var geo geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return domain.Location{}, fmt.Errorf("geocoding: failed to decode response: %w", err)
	}

	if len(geo.Results) == 0 {
		return domain.Location{}, domain.ErrCityNotFound
	}

	first := geo.Results[0]
	return domain.Location{
		Name:        first.Name,
		Country:     first.Country,
		CountryCode: first.CountryCode,
		Latitude:    first.Latitude,
		Longitude:   first.Longitude,
	}, nil
}
