package estimate

import (
	"errors"
	"fmt"
	"time"

	"suntimes-api/internal/models"

	"github.com/sj14/astral/pkg/astral"
)

const (
	timeLayout = "3:04:05 PM"
	dayLayout  = "2006-01-02"
	timezone   = "UTC"
)

// ErrNoSunEvent is wrapped into every error for a day on which the sun does
// not rise, set or reach civil twilight, as in polar day and polar night.
var ErrNoSunEvent = errors.New("sun event does not occur")

// Estimator computes sun event times locally. Results are in UTC and use the
// same string formats as the sun-times API so they render identically.
type Estimator struct {
	now func() time.Time
}

// NewEstimator creates a new estimator
func NewEstimator() *Estimator {
	return &Estimator{now: time.Now}
}

// Estimate returns the sun events of day and the following day at loc.
func (e *Estimator) Estimate(loc models.Location, day time.Time) (models.SunTimes, error) {
	observer := astral.Observer{Latitude: loc.Latitude, Longitude: loc.Longitude}
	date := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)

	today, err := dayResult(observer, date)
	if err != nil {
		return models.SunTimes{}, err
	}
	tomorrow, err := dayResult(observer, date.AddDate(0, 0, 1))
	if err != nil {
		return models.SunTimes{}, err
	}

	return models.SunTimes{
		Location:  loc,
		Today:     today,
		Tomorrow:  tomorrow,
		Timezone:  timezone,
		FetchedAt: e.now(),
	}, nil
}

func dayResult(observer astral.Observer, date time.Time) (models.DayResult, error) {
	dawn, err := astral.Dawn(observer, date, astral.DepressionCivil)
	if err != nil {
		return models.DayResult{}, eventError("civil dawn", date, err)
	}

	sunrise, err := astral.Sunrise(observer, date)
	if err != nil {
		return models.DayResult{}, eventError("sunrise", date, err)
	}

	sunset, err := astral.Sunset(observer, date)
	if err != nil {
		return models.DayResult{}, eventError("sunset", date, err)
	}

	dusk, err := astral.Dusk(observer, date, astral.DepressionCivil)
	if err != nil {
		return models.DayResult{}, eventError("civil dusk", date, err)
	}

	// West of Greenwich the evening events of a local day fall on the next UTC day.
	if sunset.Before(sunrise) {
		if sunset, err = astral.Sunset(observer, date.AddDate(0, 0, 1)); err != nil {
			return models.DayResult{}, eventError("sunset", date, err)
		}
	}
	if dusk.Before(sunrise) {
		if dusk, err = astral.Dusk(observer, date.AddDate(0, 0, 1), astral.DepressionCivil); err != nil {
			return models.DayResult{}, eventError("civil dusk", date, err)
		}
	}

	sunrise, sunset = sunrise.UTC(), sunset.UTC()
	length := sunset.Sub(sunrise)
	// Midpoint of sunrise and sunset, within a minute or so of true solar noon.
	noon := sunrise.Add(length / 2)

	return models.DayResult{
		Date:      stringPtr(date.Format(dayLayout)),
		DayLength: stringPtr(FormatDuration(length)),
		Dawn:      stringPtr(dawn.UTC().Format(timeLayout)),
		Sunrise:   stringPtr(sunrise.Format(timeLayout)),
		SolarNoon: stringPtr(noon.Format(timeLayout)),
		Sunset:    stringPtr(sunset.Format(timeLayout)),
		Dusk:      stringPtr(dusk.UTC().Format(timeLayout)),
		Timezone:  stringPtr(timezone),
		UTCOffset: floatPtr(0),
	}, nil
}

// FormatDuration renders d as H:MM:SS, the API's day_length format.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func stringPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func eventError(event string, date time.Time, err error) error {
	return fmt.Errorf("estimate: failed to calculate %s for %s: %w: %w", event, date.Format(dayLayout), ErrNoSunEvent, err)
}
