package domain

import (
	"context"
	"time"
)

// LookupOutcome records how a lookup ended
type LookupOutcome string

// Journal outcomes
const (
	OutcomeSuccess LookupOutcome = "success"
	OutcomeFailure LookupOutcome = "failure"
)

// LookupRecord is one journal row per completed lookup. The journal is
// operational telemetry; it is never rendered back into the page.
type LookupRecord struct {
	ID          string        `json:"id"`
	Query       string        `json:"query"`
	City        string        `json:"city,omitempty"`
	Country     string        `json:"country,omitempty"`
	Condition   Condition     `json:"condition,omitempty"`
	WeatherCode int           `json:"weather_code"`
	Temperature int           `json:"temperature"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Outcome     LookupOutcome `json:"outcome"`
	Timestamp   time.Time     `json:"timestamp"`
}

// LookupStats aggregates journal counters for the stats endpoint
type LookupStats struct {
	Total       int64               `json:"total"`
	Failures    int64               `json:"failures"`
	ByCondition map[Condition]int64 `json:"by_condition"`
	LastLookup  *time.Time          `json:"last_lookup,omitempty"`
}

// LookupRepository defines the interface for journal persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type LookupRepository interface {
	// SaveLookup persists one completed lookup
	SaveLookup(ctx context.Context, rec LookupRecord) error

	// Stats returns aggregate lookup counters
	Stats(ctx context.Context) (LookupStats, error)

	// Health checks database connectivity
	Health(ctx context.Context) error
}
