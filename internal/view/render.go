package view

import (
	"time"

	"suntimes-api/internal/models"
)

// Placeholder is shown for any value the API did not return.
const Placeholder = "—"

// Lines shown while a display refresh is in flight.
const (
	LoadingTimezone    = "Timezone: loading…"
	LoadingLastUpdated = "Loading…"
)

// DefaultTimestampLayout formats the "last fetched" line.
const DefaultTimestampLayout = "Mon, 02 Jan 2006 15:04:05 MST"

// Field is one labelled value of a day column.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ViewModel is everything a presentation layer needs to draw the results panel.
type ViewModel struct {
	Visible       bool    `json:"visible"`
	Loading       bool    `json:"loading"`
	LocationLabel string  `json:"location_label"`
	Timezone      string  `json:"timezone"`
	LastUpdated   string  `json:"last_updated"`
	Today         []Field `json:"today"`
	Tomorrow      []Field `json:"tomorrow"`
	Error         string  `json:"error,omitempty"`
	Dimmed        bool    `json:"dimmed"`
}

// Renderer turns fetch outcomes into view models.
type Renderer struct {
	location *time.Location
	layout   string
}

// NewRenderer formats timestamps in loc using layout. Nil or empty arguments
// fall back to local time and DefaultTimestampLayout.
func NewRenderer(loc *time.Location, layout string) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return &Renderer{location: loc, layout: layout}
}

// Render builds the view for a single outcome. A failed outcome renders the
// error banner over empty, dimmed day columns.
func (r *Renderer) Render(outcome models.FetchOutcome) ViewModel {
	if outcome.OK() {
		res := outcome.Result
		return ViewModel{
			Visible:       true,
			LocationLabel: res.Location.Label,
			Timezone:      "Timezone: " + res.Timezone,
			LastUpdated:   "Last fetched: " + res.FetchedAt.In(r.location).Format(r.layout),
			Today:         Fields(res.Today),
			Tomorrow:      Fields(res.Tomorrow),
		}
	}

	vm := ViewModel{
		Visible:  true,
		Today:    Fields(models.DayResult{}),
		Tomorrow: Fields(models.DayResult{}),
		Dimmed:   true,
		Error:    failureMessage(outcome),
	}
	if outcome.Location != nil {
		vm.LocationLabel = outcome.Location.Label
	}
	return vm
}

// Fields lists the six displayed values of a day in display order.
func Fields(day models.DayResult) []Field {
	return []Field{
		{Key: "length", Label: "Day length", Value: orPlaceholder(day.DayLength)},
		{Key: "dawn", Label: "Dawn", Value: orPlaceholder(day.Dawn)},
		{Key: "sunrise", Label: "Sunrise", Value: orPlaceholder(day.Sunrise)},
		{Key: "noon", Label: "Solar noon", Value: orPlaceholder(day.SolarNoon)},
		{Key: "sunset", Label: "Sunset", Value: orPlaceholder(day.Sunset)},
		{Key: "dusk", Label: "Dusk", Value: orPlaceholder(day.Dusk)},
	}
}

func orPlaceholder(v *string) string {
	if v == nil {
		return Placeholder
	}
	return *v
}

func failureMessage(outcome models.FetchOutcome) string {
	if outcome.Failure != nil && outcome.Failure.Message != "" {
		return outcome.Failure.Message
	}
	return "An unexpected error occurred."
}
