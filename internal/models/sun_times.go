package models

import "time"

// DayResult is one day's results object as returned by the sun-times API.
// Fields the API omits stay nil.
type DayResult struct {
	Date       *string  `json:"date,omitempty"`
	DayLength  *string  `json:"day_length,omitempty"`
	FirstLight *string  `json:"first_light,omitempty"`
	Dawn       *string  `json:"dawn,omitempty"`
	Sunrise    *string  `json:"sunrise,omitempty"`
	SolarNoon  *string  `json:"solar_noon,omitempty"`
	GoldenHour *string  `json:"golden_hour,omitempty"`
	Sunset     *string  `json:"sunset,omitempty"`
	Dusk       *string  `json:"dusk,omitempty"`
	LastLight  *string  `json:"last_light,omitempty"`
	Timezone   *string  `json:"timezone,omitempty"`
	UTCOffset  *float64 `json:"utc_offset,omitempty"`
}

// SunTimes is a successful lookup: both days plus the merged timezone.
type SunTimes struct {
	Location  Location  `json:"location"`
	Today     DayResult `json:"today"`
	Tomorrow  DayResult `json:"tomorrow"`
	Timezone  string    `json:"timezone"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ErrorKind classifies a failed lookup.
type ErrorKind string

const (
	ErrorKindInvalidInput ErrorKind = "invalid_input"
	ErrorKindNetwork      ErrorKind = "network"
	ErrorKindAPI          ErrorKind = "api"
	ErrorKindUnexpected   ErrorKind = "unexpected"
	// ErrorKindUnavailable marks valid input for which no sun times exist,
	// such as a local estimate during polar night.
	ErrorKindUnavailable  ErrorKind = "unavailable"
)

// Failure carries the single user-facing message for a failed lookup.
type Failure struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// FetchOutcome is the result of one lookup attempt. Exactly one of Result and
// Failure is set. Location is set whenever resolution succeeded.
type FetchOutcome struct {
	Location *Location `json:"location,omitempty"`
	Result   *SunTimes `json:"result,omitempty"`
	Failure  *Failure  `json:"failure,omitempty"`
}

// OK reports whether the outcome holds results.
func (o FetchOutcome) OK() bool {
	return o.Result != nil && o.Failure == nil
}
