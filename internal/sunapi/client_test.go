package sunapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"suntimes-api/internal/models"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var washington = models.Location{Latitude: 38.907192, Longitude: -77.036873, Label: "Washington, DC"}

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)
}

func newTestClient() *Client {
	return NewClient(DefaultBaseURL, 5*time.Second, WithClock(fixedClock))
}

func TestClient_URL(t *testing.T) {
	client := newTestClient()

	assert.Equal(t,
		"https://api.sunrisesunset.io/json?date=today&lat=38.907192&lng=-77.036873",
		client.URL(washington, "today"))
	assert.Equal(t,
		"https://api.sunrisesunset.io/json?date=2026-10-20&lat=51.5&lng=0",
		client.URL(models.Location{Latitude: 51.5, Longitude: 0}, "2026-10-20"))
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("  ", time.Second)
	assert.Equal(t, DefaultBaseURL, client.baseURL)

	client = NewClient("http://localhost:8081/json/", time.Second)
	assert.Equal(t, "http://localhost:8081/json", client.baseURL)
}

func TestClient_FetchSunTimes_Success(t *testing.T) {
	setupHTTPMock(t)
	registerSunAPIResponders(t, map[string]httpmock.Responder{
		"today":    httpmock.NewStringResponder(http.StatusOK, todayResponse()),
		"tomorrow": httpmock.NewStringResponder(http.StatusOK, tomorrowResponse()),
	})

	result, err := newTestClient().FetchSunTimes(context.Background(), washington, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, washington, result.Location)
	assert.Equal(t, "America/New_York", result.Timezone)
	assert.Equal(t, fixedClock(), result.FetchedAt)

	require.NotNil(t, result.Today.Sunrise)
	assert.Equal(t, "7:17:03 AM", *result.Today.Sunrise)
	assert.Equal(t, "6:20:41 PM", *result.Today.Sunset)
	assert.Equal(t, "6:50:11 AM", *result.Today.Dawn)
	assert.Equal(t, "6:47:33 PM", *result.Today.Dusk)
	assert.Equal(t, "12:48:52 PM", *result.Today.SolarNoon)
	assert.Equal(t, "11:03:38", *result.Today.DayLength)
	require.NotNil(t, result.Today.UTCOffset)
	assert.Equal(t, float64(-240), *result.Today.UTCOffset)

	require.NotNil(t, result.Tomorrow.Sunrise)
	assert.Equal(t, "7:18:08 AM", *result.Tomorrow.Sunrise)
	assert.Equal(t, "11:00:52", *result.Tomorrow.DayLength)

	assert.Equal(t, 2, httpmock.GetTotalCallCount())
}

func TestClient_FetchSunTimes_ExplicitDate(t *testing.T) {
	setupHTTPMock(t)
	registerSunAPIResponders(t, map[string]httpmock.Responder{
		"2026-10-19": httpmock.NewStringResponder(http.StatusOK, todayResponse()),
		"2026-10-20": httpmock.NewStringResponder(http.StatusOK, tomorrowResponse()),
	})

	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	result, err := newTestClient().FetchSunTimes(context.Background(), washington, day)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", result.Timezone)
}

func TestClient_FetchSunTimes_TimezoneFallback(t *testing.T) {
	tests := []struct {
		name     string
		today    string
		tomorrow string
		expected string
	}{
		{
			name:     "today missing timezone uses tomorrow",
			today:    `{"status":"OK","results":{"sunrise":"7:17:03 AM"}}`,
			tomorrow: `{"status":"OK","results":{"sunrise":"7:18:08 AM","timezone":"America/New_York"}}`,
			expected: "America/New_York",
		},
		{
			name:     "both missing timezone",
			today:    `{"status":"OK","results":{"sunrise":"7:17:03 AM"}}`,
			tomorrow: `{"status":"OK","results":{"sunrise":"7:18:08 AM"}}`,
			expected: UnknownTimezone,
		},
		{
			name:     "today wins over tomorrow",
			today:    `{"status":"OK","results":{"timezone":"Europe/London"}}`,
			tomorrow: `{"status":"OK","results":{"timezone":"America/New_York"}}`,
			expected: "Europe/London",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHTTPMock(t)
			registerSunAPIResponders(t, map[string]httpmock.Responder{
				"today":    httpmock.NewStringResponder(http.StatusOK, tt.today),
				"tomorrow": httpmock.NewStringResponder(http.StatusOK, tt.tomorrow),
			})

			result, err := newTestClient().FetchSunTimes(context.Background(), washington, time.Time{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Timezone)
			assert.Nil(t, result.Today.Dawn)
		})
	}
}

func TestClient_FetchSunTimes_HTTPErrorDiscardsOtherDay(t *testing.T) {
	setupHTTPMock(t)
	registerSunAPIResponders(t, map[string]httpmock.Responder{
		"today":    httpmock.NewStringResponder(http.StatusOK, todayResponse()),
		"tomorrow": httpmock.NewStringResponder(http.StatusInternalServerError, `oops`),
	})

	result, err := newTestClient().FetchSunTimes(context.Background(), washington, time.Time{})
	require.Error(t, err)
	assert.Equal(t, models.SunTimes{}, result)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
	assert.Equal(t, "Network error: 500 Internal Server Error", netErr.Error())
}

func TestClient_FetchSunTimes_FailureCancelsOtherDay(t *testing.T) {
	release := make(chan struct{})
	cancelled := make(chan struct{}, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("date") != "today" {
			http.Error(w, "oops", http.StatusInternalServerError)
			return
		}
		select {
		case <-r.Context().Done():
			cancelled <- struct{}{}
			return
		case <-release:
		case <-time.After(3 * time.Second):
		}
		_, _ = io.WriteString(w, todayResponse())
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client := NewClient(srv.URL, 10*time.Second, WithHTTPClient(srv.Client()), WithClock(fixedClock))

	start := time.Now()
	_, err := client.FetchSunTimes(context.Background(), washington, time.Time{})
	elapsed := time.Since(start)

	require.Error(t, err)
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
	assert.Less(t, elapsed, time.Second, "should not wait for today's response")

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("today's request was not cancelled")
	}
}

func TestClient_FetchSunTimes_TransportError(t *testing.T) {
	setupHTTPMock(t)
	registerSunAPIResponders(t, map[string]httpmock.Responder{
		"today":    httpmock.NewErrorResponder(errors.New("connection refused")),
		"tomorrow": httpmock.NewStringResponder(http.StatusOK, tomorrowResponse()),
	})

	_, err := newTestClient().FetchSunTimes(context.Background(), washington, time.Time{})
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
	assert.Contains(t, netErr.Error(), "connection refused")
}

func TestClient_FetchSunTimes_APIErrors(t *testing.T) {
	tests := []struct {
		name     string
		today    string
		tomorrow string
		message  string
		day      string
	}{
		{
			name:     "api message is surfaced",
			today:    `{"status":"ERROR","message":"Invalid date"}`,
			tomorrow: tomorrowResponse(),
			message:  "Invalid date",
			day:      "today",
		},
		{
			name:     "missing results without message",
			today:    todayResponse(),
			tomorrow: `{"status":"OK"}`,
			message:  "API returned an error for tomorrow",
			day:      "tomorrow",
		},
		{
			name:     "null payload",
			today:    `null`,
			tomorrow: tomorrowResponse(),
			message:  "API returned an error for today",
			day:      "today",
		},
		{
			name:     "status not ok with results",
			today:    `{"status":"INVALID_REQUEST","results":{"sunrise":"7:17:03 AM"}}`,
			tomorrow: tomorrowResponse(),
			message:  "API returned an error for today",
			day:      "today",
		},
		{
			name:     "results false",
			today:    `{"status":"OK","results":false}`,
			tomorrow: tomorrowResponse(),
			message:  "API returned an error for today",
			day:      "today",
		},
		{
			name:     "results zero",
			today:    todayResponse(),
			tomorrow: `{"status":"OK","results":0}`,
			message:  "API returned an error for tomorrow",
			day:      "tomorrow",
		},
		{
			name:     "results empty string",
			today:    `{"status":"OK","results":""}`,
			tomorrow: tomorrowResponse(),
			message:  "API returned an error for today",
			day:      "today",
		},
		{
			name:     "today reported before tomorrow",
			today:    `{"status":"ERROR","message":"first"}`,
			tomorrow: `{"status":"ERROR","message":"second"}`,
			message:  "first",
			day:      "today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHTTPMock(t)
			registerSunAPIResponders(t, map[string]httpmock.Responder{
				"today":    httpmock.NewStringResponder(http.StatusOK, tt.today),
				"tomorrow": httpmock.NewStringResponder(http.StatusOK, tt.tomorrow),
			})

			_, err := newTestClient().FetchSunTimes(context.Background(), washington, time.Time{})
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.message, apiErr.Error())
			assert.Equal(t, tt.day, apiErr.Day)
		})
	}
}

func TestClient_FetchSunTimes_NonObjectResults(t *testing.T) {
	setupHTTPMock(t)
	registerSunAPIResponders(t, map[string]httpmock.Responder{
		"today":    httpmock.NewStringResponder(http.StatusOK, `{"status":"OK","results":[]}`),
		"tomorrow": httpmock.NewStringResponder(http.StatusOK, tomorrowResponse()),
	})

	result, err := newTestClient().FetchSunTimes(context.Background(), washington, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, models.DayResult{}, result.Today)
	assert.Equal(t, "America/New_York", result.Timezone)
}

func TestClient_FetchSunTimes_FractionalUTCOffset(t *testing.T) {
	setupHTTPMock(t)
	registerSunAPIResponders(t, map[string]httpmock.Responder{
		"today": httpmock.NewStringResponder(http.StatusOK,
			`{"status":"OK","results":{"sunrise":"6:01:12 AM","timezone":"Asia/Kolkata","utc_offset":330.5}}`),
		"tomorrow": httpmock.NewStringResponder(http.StatusOK, tomorrowResponse()),
	})

	result, err := newTestClient().FetchSunTimes(context.Background(), washington, time.Time{})
	require.NoError(t, err)
	require.NotNil(t, result.Today.UTCOffset)
	assert.InDelta(t, 330.5, *result.Today.UTCOffset, 1e-9)
	assert.Equal(t, "Asia/Kolkata", result.Timezone)
}

func TestClient_FetchSunTimes_InvalidJSON(t *testing.T) {
	setupHTTPMock(t)
	registerSunAPIResponders(t, map[string]httpmock.Responder{
		"today":    httpmock.NewStringResponder(http.StatusOK, `{invalid json`),
		"tomorrow": httpmock.NewStringResponder(http.StatusOK, tomorrowResponse()),
	})

	_, err := newTestClient().FetchSunTimes(context.Background(), washington, time.Time{})
	require.Error(t, err)

	var netErr *NetworkError
	var apiErr *APIError
	assert.False(t, errors.As(err, &netErr))
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_FetchSunTimes_Idempotent(t *testing.T) {
	setupHTTPMock(t)
	registerSunAPIResponders(t, map[string]httpmock.Responder{
		"today":    httpmock.NewStringResponder(http.StatusOK, todayResponse()),
		"tomorrow": httpmock.NewStringResponder(http.StatusOK, tomorrowResponse()),
	})

	client := newTestClient()
	first, err := client.FetchSunTimes(context.Background(), washington, time.Time{})
	require.NoError(t, err)
	second, err := client.FetchSunTimes(context.Background(), washington, time.Time{})
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstJSON, secondJSON)
	assert.Equal(t, 4, httpmock.GetTotalCallCount())
}

func TestMergeTimezone(t *testing.T) {
	tz := "Asia/Tokyo"

	assert.Equal(t, tz, MergeTimezone(models.DayResult{Timezone: &tz}, models.DayResult{}))
	assert.Equal(t, tz, MergeTimezone(models.DayResult{}, models.DayResult{Timezone: &tz}))
	assert.Equal(t, UnknownTimezone, MergeTimezone(models.DayResult{}, models.DayResult{}))
}
