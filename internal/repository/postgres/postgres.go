package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citycast/backend/internal/domain"
)

// PostgresRepository implements domain.LookupRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// InitSchema applies the minimal schema for the lookup journal
func (r *PostgresRepository) InitSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS weather_lookups (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			city TEXT,
			country TEXT,
			condition TEXT,
			weather_code INT,
			temperature INT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			outcome TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL
		)
	`

	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to init schema: %w", err)
	}

	return nil
}

// SaveLookup persists a lookup journal row to PostgreSQL
func (r *PostgresRepository) SaveLookup(ctx context.Context, rec domain.LookupRecord) error {
	query := `
		INSERT INTO weather_lookups (
			id, query, city, country, condition, weather_code,
			temperature, latitude, longitude, outcome, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.Query, rec.City, rec.Country, rec.Condition, rec.WeatherCode,
		rec.Temperature, rec.Latitude, rec.Longitude, rec.Outcome, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save lookup record: %w", err)
	}

	return nil
}

// Stats aggregates the lookup journal into counters
func (r *PostgresRepository) Stats(ctx context.Context) (domain.LookupStats, error) {
	stats := domain.LookupStats{
		ByCondition: make(map[domain.Condition]int64),
	}

	totalsQuery := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE outcome = $1),
			   MAX(timestamp)
		FROM weather_lookups
	`

	var last *time.Time
	err := r.pool.QueryRow(ctx, totalsQuery, domain.OutcomeFailure).Scan(&stats.Total, &stats.Failures, &last)
	if err != nil {
		return domain.LookupStats{}, fmt.Errorf("postgres: failed to query lookup totals: %w", err)
	}
	stats.LastLookup = last

	conditionQuery := `
		SELECT condition, COUNT(*)
		FROM weather_lookups
		WHERE outcome = $1
		GROUP BY condition
	`

	rows, err := r.pool.Query(ctx, conditionQuery, domain.OutcomeSuccess)
	if err != nil {
		return domain.LookupStats{}, fmt.Errorf("postgres: failed to query condition counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var condition domain.Condition
		var count int64
		if err := rows.Scan(&condition, &count); err != nil {
			return domain.LookupStats{}, fmt.Errorf("postgres: failed to scan condition row: %w", err)
		}
		stats.ByCondition[condition] = count
	}

	return stats, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
