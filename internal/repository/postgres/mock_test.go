package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/citycast/backend/internal/domain"
)

// TestMockRepository_Counters tests that saved lookups accumulate into stats
func TestMockRepository_Counters(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	records := []domain.LookupRecord{
		{ID: "1", Query: "Berlin", Condition: domain.ConditionRain, Outcome: domain.OutcomeSuccess, Timestamp: time.Now()},
		{ID: "2", Query: "Oslo", Condition: domain.ConditionSnow, Outcome: domain.OutcomeSuccess, Timestamp: time.Now()},
		{ID: "3", Query: "Berlin", Condition: domain.ConditionRain, Outcome: domain.OutcomeSuccess, Timestamp: time.Now()},
		{ID: "4", Query: "Atlantis", Outcome: domain.OutcomeFailure, Timestamp: time.Now()},
	}
	for _, rec := range records {
		if err := repo.SaveLookup(ctx, rec); err != nil {
			t.Fatalf("SaveLookup(%s) failed: %v", rec.ID, err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Failures != 1 {
		t.Errorf("Failures = %d, want 1", stats.Failures)
	}
	if stats.ByCondition[domain.ConditionRain] != 2 {
		t.Errorf("ByCondition[Rain] = %d, want 2", stats.ByCondition[domain.ConditionRain])
	}
	if stats.ByCondition[domain.ConditionSnow] != 1 {
		t.Errorf("ByCondition[Snow] = %d, want 1", stats.ByCondition[domain.ConditionSnow])
	}
	if stats.LastLookup == nil {
		t.Error("LastLookup should be set after saves")
	}
}

// TestMockRepository_StatsIsolation tests that returned stats are a copy
func TestMockRepository_StatsIsolation(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	if err := repo.SaveLookup(ctx, domain.LookupRecord{
		ID: "1", Query: "Berlin", Condition: domain.ConditionClear,
		Outcome: domain.OutcomeSuccess, Timestamp: time.Now(),
	}); err != nil {
		t.Fatalf("SaveLookup failed: %v", err)
	}

	first, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	first.ByCondition[domain.ConditionClear] = 99

	second, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if second.ByCondition[domain.ConditionClear] != 1 {
		t.Errorf("mutating a returned stats copy leaked into the repository")
	}
}

// TestMockRepository_Health tests that mock mode always reports healthy
func TestMockRepository_Health(t *testing.T) {
	repo := NewMockRepository()
	if err := repo.Health(context.Background()); err != nil {
		t.Errorf("Health() = %v, want nil", err)
	}
}
