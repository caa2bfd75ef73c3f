package service

import (
	"errors"
	"math"
	"testing"

	"suntimes-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = models.Preset{ID: "tokyo", Name: "Tokyo, Japan", Latitude: 35.6762, Longitude: 139.6503}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		lat         string
		lng         string
		selected    *models.Preset
		expected    models.Location
		expectError bool
	}{
		{
			name:     "custom coordinates override preset",
			lat:      "40.7128",
			lng:      "-74.006",
			selected: &tokyo,
			expected: models.Location{Latitude: 40.7128, Longitude: -74.006, Label: "Custom: 40.71280, -74.00600"},
		},
		{
			name:     "custom coordinates without preset",
			lat:      " 51.50735 ",
			lng:      "\t-0.12776",
			expected: models.Location{Latitude: 51.50735, Longitude: -0.12776, Label: "Custom: 51.50735, -0.12776"},
		},
		{
			name:     "label rounds to five decimals",
			lat:      "1.123456789",
			lng:      "2",
			selected: &tokyo,
			expected: models.Location{Latitude: 1.123456789, Longitude: 2, Label: "Custom: 1.12346, 2.00000"},
		},
		{
			name:     "no custom input uses preset",
			selected: &tokyo,
			expected: models.Location{Latitude: 35.6762, Longitude: 139.6503, Label: "Tokyo, Japan"},
		},
		{
			// Partial custom input silently falls back to the preset. This keeps
			// the page's behavior even though a validation error would arguably
			// be the better experience.
			name:     "only latitude filled in falls back to preset",
			lat:      "12.5",
			selected: &tokyo,
			expected: tokyo.Location(),
		},
		{
			name:     "only longitude filled in falls back to preset",
			lng:      "not a number",
			selected: &tokyo,
			expected: tokyo.Location(),
		},
		{
			name:     "whitespace-only field counts as empty",
			lat:      "   ",
			lng:      "10",
			selected: &tokyo,
			expected: tokyo.Location(),
		},
		{
			name:        "non numeric custom input",
			lat:         "north",
			lng:         "west",
			selected:    &tokyo,
			expectError: true,
		},
		{
			name:        "one invalid custom field",
			lat:         "10",
			lng:         "1O",
			selected:    &tokyo,
			expectError: true,
		},
		{
			name:        "infinite values are rejected",
			lat:         "Inf",
			lng:         "10",
			selected:    &tokyo,
			expectError: true,
		},
		{
			name:        "NaN is rejected",
			lat:         "10",
			lng:         "NaN",
			expectError: true,
		},
		{
			name:        "no preset and no custom input",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Resolve(tt.lat, tt.lng, tt.selected)

			if tt.expectError {
				require.Error(t, err)
				var invalid *InvalidInputError
				assert.True(t, errors.As(err, &invalid))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolve_NegativeZero(t *testing.T) {
	loc, err := Resolve("-0", "-0.000", &tokyo)
	require.NoError(t, err)

	assert.Equal(t, "Custom: 0.00000, 0.00000", loc.Label)
	assert.False(t, math.Signbit(loc.Latitude))
	assert.False(t, math.Signbit(loc.Longitude))

	// Small negative values keep their sign.
	loc, err = Resolve("-0.000001", "0", nil)
	require.NoError(t, err)
	assert.Equal(t, "Custom: -0.00000, 0.00000", loc.Label)
}

func TestResolve_InvalidCustomMessage(t *testing.T) {
	_, err := Resolve("abc", "def", &tokyo)
	require.Error(t, err)
	assert.Equal(t, "Custom coordinates are not valid numbers.", err.Error())
}
