package postgres

import (
	"context"
	"sync"

	"github.com/citycast/backend/internal/domain"
)

// MockRepository implements domain.LookupRepository for testing/demo mode.
// Counters live in memory so /api/v1/stats stays meaningful without a
// database.
type MockRepository struct {
	mu    sync.Mutex
	stats domain.LookupStats
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		stats: domain.LookupStats{
			ByCondition: make(map[domain.Condition]int64),
		},
	}
}

// SaveLookup counts the record in memory
func (r *MockRepository) SaveLookup(ctx context.Context, rec domain.LookupRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Total++
	if rec.Outcome == domain.OutcomeFailure {
		r.stats.Failures++
	} else {
		r.stats.ByCondition[rec.Condition]++
	}
	ts := rec.Timestamp
	r.stats.LastLookup = &ts

	return nil
}

// Stats returns a copy of the in-memory counters
func (r *MockRepository) Stats(ctx context.Context) (domain.LookupStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := domain.LookupStats{
		Total:       r.stats.Total,
		Failures:    r.stats.Failures,
		ByCondition: make(map[domain.Condition]int64, len(r.stats.ByCondition)),
	}
	for condition, count := range r.stats.ByCondition {
		out.ByCondition[condition] = count
	}
	if r.stats.LastLookup != nil {
		ts := *r.stats.LastLookup
		out.LastLookup = &ts
	}

	return out, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
