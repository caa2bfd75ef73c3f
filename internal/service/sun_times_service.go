package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"suntimes-api/internal/estimate"
	"suntimes-api/internal/models"

	"github.com/rs/zerolog/log"
)

// SunTimesService resolves lookup input into a location and fetches its sun times
type SunTimesService struct {
	presets   PresetRepository
	fetcher   SunTimesFetcher
	estimator SunTimesEstimator
}

// PresetRepository interface for dependency injection
type PresetRepository interface {
	ListPresets(ctx context.Context) ([]models.Preset, error)
	FindPreset(ctx context.Context, id string) (*models.Preset, error)
}

// SunTimesFetcher retrieves today's and tomorrow's sun times for a location
type SunTimesFetcher interface {
	FetchSunTimes(ctx context.Context, loc models.Location, day time.Time) (models.SunTimes, error)
}

// SunTimesEstimator computes sun times locally without calling the API
type SunTimesEstimator interface {
	Estimate(loc models.Location, day time.Time) (models.SunTimes, error)
}

// LookupRequest carries the raw user input of one lookup.
// An empty PresetID selects the first preset of the catalog.
// A zero Date means today and tomorrow as seen by the API.
type LookupRequest struct {
	CustomLat string
	CustomLng string
	PresetID  string
	Date      time.Time
}

// NewSunTimesService creates a new sun times service
func NewSunTimesService(presets PresetRepository, fetcher SunTimesFetcher, estimator SunTimesEstimator) *SunTimesService {
	return &SunTimesService{
		presets:   presets,
		fetcher:   fetcher,
		estimator: estimator,
	}
}

// Presets lists the preset catalog in display order
func (s *SunTimesService) Presets(ctx context.Context) ([]models.Preset, error) {
	presets, err := s.presets.ListPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list presets: %w", err)
	}
	return presets, nil
}

// ResolveLocation picks the location for req, looking the preset up only when
// the custom coordinates do not override it
func (s *SunTimesService) ResolveLocation(ctx context.Context, req LookupRequest) (models.Location, error) {
	if hasCustom(req.CustomLat, req.CustomLng) {
		return Resolve(req.CustomLat, req.CustomLng, nil)
	}

	preset, err := s.selectedPreset(ctx, req.PresetID)
	if err != nil {
		return models.Location{}, err
	}
	return Resolve(req.CustomLat, req.CustomLng, preset)
}

// Lookup resolves req and fetches sun times for it. Every failure is turned
// into the outcome's Failure; Lookup itself never fails.
func (s *SunTimesService) Lookup(ctx context.Context, req LookupRequest) models.FetchOutcome {
	loc, err := s.ResolveLocation(ctx, req)
	if err != nil {
		return s.fail(nil, err)
	}

	result, err := s.fetcher.FetchSunTimes(ctx, loc, req.Date)
	if err != nil {
		return s.fail(&loc, err)
	}

	log.Info().
		Str("label", loc.Label).
		Float64("lat", loc.Latitude).
		Float64("lng", loc.Longitude).
		Str("timezone", result.Timezone).
		Msg("sun times fetched")

	return models.FetchOutcome{Location: &loc, Result: &result}
}

// Estimate resolves req like Lookup but computes the sun times locally
func (s *SunTimesService) Estimate(ctx context.Context, req LookupRequest) models.FetchOutcome {
	loc, err := s.ResolveLocation(ctx, req)
	if err != nil {
		return s.fail(nil, err)
	}

	day := req.Date
	if day.IsZero() {
		day = time.Now().UTC()
	}

	result, err := s.estimator.Estimate(loc, day)
	if err != nil {
		if errors.Is(err, estimate.ErrNoSunEvent) {
			return s.fail(&loc, &UnavailableError{Err: err})
		}
		return s.fail(&loc, &UnexpectedError{Err: err})
	}
	return models.FetchOutcome{Location: &loc, Result: &result}
}

func (s *SunTimesService) selectedPreset(ctx context.Context, id string) (*models.Preset, error) {
	if id == "" {
		presets, err := s.presets.ListPresets(ctx)
		if err != nil {
			return nil, &UnexpectedError{Err: fmt.Errorf("service: failed to list presets: %w", err)}
		}
		if len(presets) == 0 {
			return nil, nil
		}
		return &presets[0], nil
	}

	preset, err := s.presets.FindPreset(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrPresetNotFound) {
			return nil, &InvalidInputError{Message: fmt.Sprintf("unknown preset %q", id)}
		}
		return nil, &UnexpectedError{Err: fmt.Errorf("service: failed to find preset: %w", err)}
	}
	return preset, nil
}

func (s *SunTimesService) fail(loc *models.Location, err error) models.FetchOutcome {
	failure := Classify(err)

	event := log.Error().Err(err).Str("kind", string(failure.Kind))
	if loc != nil {
		event = event.Str("label", loc.Label)
	}
	event.Msg("sun times lookup failed")

	return models.FetchOutcome{Location: loc, Failure: &failure}
}
