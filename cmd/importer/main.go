package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"suntimes-api/internal/config"
	"suntimes-api/internal/models"
	"suntimes-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the presets CSV file to import (id,name,latitude,longitude)")
	configDir := flag.String("config", "configs", "Directory containing app.env")
	flag.Parse()

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting preset import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open file")
	}
	defer f.Close()

	presets, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse CSV")
	}
	log.Info().Int("count", len(presets)).Msg("parsed presets")

	// Load config
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is not configured")
	}

	// Connect to DB
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		log.Fatal().Err(err).Msg("failed to create presets table")
	}

	if err := replacePresets(ctx, conn, presets); err != nil {
		log.Fatal().Err(err).Msg("failed to insert presets")
	}

	if err := verifyImport(ctx, conn, len(presets)); err != nil {
		log.Fatal().Err(err).Msg("failed to verify import")
	}

	log.Info().Int("count", len(presets)).Msg("successfully imported presets")
}

// parseCSV reads presets from a CSV with a header row. Row order becomes the
// preset position.
func parseCSV(r io.Reader) ([]models.Preset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var presets []models.Preset
	seen := make(map[string]bool)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 4 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 4 columns", len(record))
		}

		id := strings.TrimSpace(record[0])
		if id == "" {
			return nil, fmt.Errorf("empty preset id in row %d", len(presets)+1)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate preset id: %s", id)
		}
		seen[id] = true

		lat, err := parseCoordinate(record[2], 90)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude for %s: %w", id, err)
		}

		lon, err := parseCoordinate(record[3], 180)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude for %s: %w", id, err)
		}

		presets = append(presets, models.Preset{
			ID:        id,
			Name:      strings.TrimSpace(record[1]),
			Latitude:  lat,
			Longitude: lon,
			Position:  len(presets),
		})
	}

	return presets, nil
}

func parseCoordinate(text string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < -limit || v > limit {
		return 0, fmt.Errorf("%s out of range", text)
	}
	return v, nil
}

// replacePresets swaps the whole catalog in one transaction.
func replacePresets(ctx context.Context, conn *pgx.Conn, presets []models.Preset) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM presets"); err != nil {
		return fmt.Errorf("failed to clear presets: %w", err)
	}

	// Use CopyFrom for bulk insert
	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"presets"},
		[]string{"id", "name", "latitude", "longitude", "position"},
		pgx.CopyFromSlice(len(presets), func(i int) ([]any, error) {
			p := presets[i]
			return []any{p.ID, p.Name, p.Latitude, p.Longitude, p.Position}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy presets: %w", err)
	}

	return tx.Commit(ctx)
}

func verifyImport(ctx context.Context, conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM presets").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	return nil
}
