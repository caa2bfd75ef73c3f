package sunapi

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
)

// setupHTTPMock activates httpmock for the test and resets it afterwards.
func setupHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

// registerSunAPIResponders routes requests to the sun API by their date parameter.
func registerSunAPIResponders(t *testing.T, byDate map[string]httpmock.Responder) {
	t.Helper()

	httpmock.RegisterResponder("GET", `=~^https://api\.sunrisesunset\.io/json`,
		func(req *http.Request) (*http.Response, error) {
			responder, ok := byDate[req.URL.Query().Get("date")]
			if !ok {
				return httpmock.NewStringResponse(http.StatusNotFound, `{"status":"ERROR"}`), nil
			}
			return responder(req)
		})
}

func todayResponse() string {
	return `{
  "results": {
    "date": "2026-10-19",
    "sunrise": "7:17:03 AM",
    "sunset": "6:20:41 PM",
    "first_light": "5:49:02 AM",
    "last_light": "7:48:42 PM",
    "dawn": "6:50:11 AM",
    "dusk": "6:47:33 PM",
    "solar_noon": "12:48:52 PM",
    "golden_hour": "5:42:19 PM",
    "day_length": "11:03:38",
    "timezone": "America/New_York",
    "utc_offset": -240
  },
  "status": "OK"
}`
}

func tomorrowResponse() string {
	return `{
  "results": {
    "date": "2026-10-20",
    "sunrise": "7:18:08 AM",
    "sunset": "6:19:00 PM",
    "first_light": "5:50:01 AM",
    "last_light": "7:47:07 PM",
    "dawn": "6:51:14 AM",
    "dusk": "6:45:54 PM",
    "solar_noon": "12:48:34 PM",
    "golden_hour": "5:40:32 PM",
    "day_length": "11:00:52",
    "timezone": "America/New_York",
    "utc_offset": -240
  },
  "status": "OK"
}`
}
