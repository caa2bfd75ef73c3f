package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"suntimes-api/internal/models"
)

const invalidCustomMessage = "Custom coordinates are not valid numbers."

// Resolve decides which location to query. Custom coordinates win over the
// selected preset whenever both custom fields are filled in. If only one of
// them is filled in it is ignored and the preset is used.
func Resolve(customLat, customLng string, selected *models.Preset) (models.Location, error) {
	if hasCustom(customLat, customLng) {
		lat, latOK := parseFinite(customLat)
		lng, lngOK := parseFinite(customLng)
		if !latOK || !lngOK {
			return models.Location{}, &InvalidInputError{Message: invalidCustomMessage}
		}
		return models.Location{
			Latitude:  lat,
			Longitude: lng,
			Label:     fmt.Sprintf("Custom: %.5f, %.5f", lat, lng),
		}, nil
	}

	if selected == nil {
		return models.Location{}, &InvalidInputError{Message: "no preset selected"}
	}
	return selected.Location(), nil
}

// hasCustom reports whether both custom fields carry text.
func hasCustom(customLat, customLng string) bool {
	return strings.TrimSpace(customLat) != "" && strings.TrimSpace(customLng) != ""
}

func parseFinite(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v == 0 {
		// -0 prints as "-0.00000" and "-0"
		v = 0
	}
	return v, true
}
