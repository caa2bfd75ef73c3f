package models

import "errors"

// Location is the point a sun-times lookup is made for, together with the label shown for it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
}

// Preset is a named quick-select location from the preset catalog.
type Preset struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Position  int     `json:"position"`
}

// Location returns the preset's coordinates labelled with its display name.
func (p Preset) Location() Location {
	return Location{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Label:     p.Name,
	}
}

// ErrPresetNotFound is returned when no preset has the requested ID.
var ErrPresetNotFound = errors.New("preset not found")
