package repository

import (
	"context"
	"errors"
	"fmt"

	"suntimes-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the preset repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListPresets returns every preset in display order
func (r *Repository) ListPresets(ctx context.Context) ([]models.Preset, error) {
	sql := `
		SELECT
			id,
			name,
			latitude,
			longitude,
			position
		FROM presets
		ORDER BY position, name
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute preset query: %w", err)
	}
	defer rows.Close()

	presets := []models.Preset{}
	for rows.Next() {
		var p models.Preset
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Latitude,
			&p.Longitude,
			&p.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan preset: %w", err)
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return presets, nil
}

// FindPreset returns the preset with the given ID or models.ErrPresetNotFound
func (r *Repository) FindPreset(ctx context.Context, id string) (*models.Preset, error) {
	sql := `
		SELECT
			id,
			name,
			latitude,
			longitude,
			position
		FROM presets
		WHERE id = $1
	`

	var p models.Preset
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&p.ID,
		&p.Name,
		&p.Latitude,
		&p.Longitude,
		&p.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: %q: %w", id, models.ErrPresetNotFound)
		}
		return nil, fmt.Errorf("repository: failed to execute preset lookup: %w", err)
	}

	return &p, nil
}

// Schema creates the presets table used by Repository.
const Schema = `
	CREATE TABLE IF NOT EXISTS presets (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		latitude DOUBLE PRECISION NOT NULL CHECK (latitude BETWEEN -90 AND 90),
		longitude DOUBLE PRECISION NOT NULL CHECK (longitude BETWEEN -180 AND 180),
		position INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS presets_position_idx ON presets (position);
`
