package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/citycast/backend/internal/domain"
	"github.com/citycast/backend/pkg/utils"
)

// LookupService owns the city → weather chain: geocode the name, fetch
// current conditions for the coordinates, normalize for display
type LookupService struct {
	geocoder  *GeocodingService
	forecasts *ForecastService
	repo      LookupRepository

	group singleflight.Group
	wgBg  sync.WaitGroup // tracks background journal writes for graceful shutdown
}

// NewLookupService creates a new lookup service
func NewLookupService(
	geocoder *GeocodingService,
	forecasts *ForecastService,
	repo LookupRepository,
) *LookupService {
	return &LookupService{
		geocoder:  geocoder,
		forecasts: forecasts,
		repo:      repo,
	}
}

// WaitBackground blocks until all background journal writes complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *LookupService) WaitBackground() {
	s.wgBg.Wait()
}

// Lookup resolves a city name to normalized current weather. Blank input
// is rejected before any network call; every other failure collapses to
// domain.ErrCityNotFound with the cause logged here. Concurrent lookups
// for the same city share a single upstream chain.
func (s *LookupService) Lookup(ctx context.Context, city string) (*domain.Weather, error) {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return nil, domain.ErrEmptyCity
	}

	key := strings.ToLower(trimmed)
	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.performLookup(ctx, trimmed)
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.Weather), nil
}

// performLookup runs the two-call chain. The calls are strictly
// sequential: the forecast request needs the geocoded coordinates.
func (s *LookupService) performLookup(ctx context.Context, city string) (*domain.Weather, error) {
	loc, err := s.geocoder.ResolveCity(ctx, city)
	if err != nil {
		return nil, s.fail(city, err)
	}

	current, err := s.forecasts.FetchCurrent(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, s.fail(city, err)
	}

	weather := normalize(loc, current)

	s.record(domain.LookupRecord{
		Query:       city,
		City:        weather.City,
		Country:     weather.Country,
		Condition:   weather.Condition,
		WeatherCode: weather.WeatherCode,
		Temperature: weather.Temperature,
		Latitude:    weather.Latitude,
		Longitude:   weather.Longitude,
		Outcome:     domain.OutcomeSuccess,
	})

	return weather, nil
}

// fail logs the underlying cause, journals the miss and returns the
// single collapsed failure the caller is allowed to see
func (s *LookupService) fail(city string, err error) error {
	log.Printf("Lookup for %q failed: %v", city, err)

	s.record(domain.LookupRecord{
		Query:   city,
		Outcome: domain.OutcomeFailure,
	})

	return domain.ErrCityNotFound
}

// record persists a journal row asynchronously (tracked for graceful
// shutdown). Journal errors never affect the lookup outcome.
func (s *LookupService) record(rec domain.LookupRecord) {
	rec.ID = utils.NewID()
	rec.Timestamp = time.Now()

	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveLookup(bgCtx, rec); err != nil {
			log.Printf("Failed to save lookup record: %v", err)
		}
	}()
}

// normalize rounds the raw conditions for display and attaches the
// classified category with its fixed description and icon
func normalize(loc domain.Location, cur CurrentConditions) *domain.Weather {
	condition := domain.ClassifyWeatherCode(cur.WeatherCode)

	return &domain.Weather{
		City:        loc.Name,
		Country:     loc.Country,
		CountryCode: loc.CountryCode,
		Temperature: utils.RoundToInt(cur.Temperature),
		FeelsLike:   utils.RoundToInt(cur.ApparentTemperature),
		Humidity:    cur.RelativeHumidity,
		WindSpeed:   utils.RoundToInt(cur.WindSpeed),
		Condition:   condition,
		Description: condition.Description(),
		Icon:        condition.Icon(),
		WeatherCode: cur.WeatherCode,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		Timestamp:   time.Now(),
	}
}
