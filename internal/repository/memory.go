package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"suntimes-api/internal/models"
)

// DefaultPresets is the catalog served when no database is configured.
var DefaultPresets = []models.Preset{
	{ID: "washington-dc", Name: "Washington, DC, USA", Latitude: 38.907192, Longitude: -77.036873, Position: 0},
	{ID: "new-york", Name: "New York, USA", Latitude: 40.712776, Longitude: -74.005974, Position: 1},
	{ID: "london", Name: "London, UK", Latitude: 51.507351, Longitude: -0.127758, Position: 2},
	{ID: "paris", Name: "Paris, France", Latitude: 48.856613, Longitude: 2.352222, Position: 3},
	{ID: "tokyo", Name: "Tokyo, Japan", Latitude: 35.676192, Longitude: 139.650311, Position: 4},
	{ID: "sydney", Name: "Sydney, Australia", Latitude: -33.868820, Longitude: 151.209296, Position: 5},
	{ID: "reykjavik", Name: "Reykjavík, Iceland", Latitude: 64.146582, Longitude: -21.942635, Position: 6},
	{ID: "cape-town", Name: "Cape Town, South Africa", Latitude: -33.924869, Longitude: 18.424055, Position: 7},
}

// MemoryPresets is an in-memory preset catalog.
type MemoryPresets struct {
	mu      sync.RWMutex
	presets []models.Preset
}

// NewMemoryPresets builds a catalog from presets, ordered by position.
func NewMemoryPresets(presets []models.Preset) *MemoryPresets {
	sorted := make([]models.Preset, len(presets))
	copy(sorted, presets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return &MemoryPresets{presets: sorted}
}

// ListPresets returns a copy of the catalog.
func (m *MemoryPresets) ListPresets(_ context.Context) ([]models.Preset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Preset, len(m.presets))
	copy(out, m.presets)
	return out, nil
}

// FindPreset returns the preset with the given ID or models.ErrPresetNotFound.
func (m *MemoryPresets) FindPreset(_ context.Context, id string) (*models.Preset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.presets {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("repository: %q: %w", id, models.ErrPresetNotFound)
}
