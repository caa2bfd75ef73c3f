package sunapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"suntimes-api/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL is the public sunrisesunset.io JSON endpoint.
	DefaultBaseURL = "https://api.sunrisesunset.io/json"

	// UnknownTimezone is reported when neither day carries a timezone.
	UnknownTimezone = "Unknown"

	userAgent = "suntimes-api/1.0"
	dayLayout = "2006-01-02"
	statusOK  = "OK"
)

var dayNames = [2]string{"today", "tomorrow"}

// Client fetches sun times from the sunrisesunset.io API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock sets the clock used to stamp completed fetches.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient builds an API client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Results json.RawMessage `json:"results"`
}

// FetchSunTimes requests today's and tomorrow's sun times for loc in parallel
// and merges them. A zero day asks the API for "today" and "tomorrow";
// otherwise day and the following calendar day are requested explicitly.
//
// The first transport failure or non-2xx status cancels the other request and
// is returned as a *NetworkError. Payloads are then validated in day order and
// the first application-level failure is returned as an *APIError.
func (c *Client) FetchSunTimes(ctx context.Context, loc models.Location, day time.Time) (models.SunTimes, error) {
	dates := requestDates(day)

	var payloads [2]*apiResponse
	g, gctx := errgroup.WithContext(ctx)
	for i, date := range dates {
		g.Go(func() error {
			payload, err := c.fetchDay(gctx, loc, date)
			if err != nil {
				return err
			}
			payloads[i] = payload
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.SunTimes{}, err
	}

	var results [2]models.DayResult
	for i, payload := range payloads {
		result, err := dayResult(payload, dayNames[i])
		if err != nil {
			return models.SunTimes{}, err
		}
		results[i] = result
	}

	return models.SunTimes{
		Location:  loc,
		Today:     results[0],
		Tomorrow:  results[1],
		Timezone:  MergeTimezone(results[0], results[1]),
		FetchedAt: c.now(),
	}, nil
}

// URL returns the request URL for loc on date ("today", "tomorrow" or YYYY-MM-DD).
func (c *Client) URL(loc models.Location, date string) string {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	params.Set("date", date)
	return c.baseURL + "?" + params.Encode()
}

func (c *Client) fetchDay(ctx context.Context, loc models.Location, date string) (*apiResponse, error) {
	endpoint := c.URL(loc, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("sunapi: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	log.Debug().Str("url", endpoint).Int("status", resp.StatusCode).Msg("sun api response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read %s response: %w", date, err)}
	}

	var payload *apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("sunapi: failed to decode %s response: %w", date, err)
	}

	return payload, nil
}

func dayResult(payload *apiResponse, day string) (models.DayResult, error) {
	if payload == nil || payload.Status != statusOK || missingResults(payload.Results) {
		msg := fmt.Sprintf("API returned an error for %s", day)
		if payload != nil && payload.Message != "" {
			msg = payload.Message
		}
		return models.DayResult{}, &APIError{Day: day, Message: msg}
	}

	// Present but not an object: no fields to read, every value renders empty.
	var result models.DayResult
	if !isObject(payload.Results) {
		return result, nil
	}
	if err := json.Unmarshal(payload.Results, &result); err != nil {
		return models.DayResult{}, fmt.Errorf("sunapi: failed to decode %s results: %w", day, err)
	}
	return result, nil
}

// MergeTimezone prefers today's timezone, then tomorrow's, then UnknownTimezone.
func MergeTimezone(today, tomorrow models.DayResult) string {
	if today.Timezone != nil {
		return *today.Timezone
	}
	if tomorrow.Timezone != nil {
		return *tomorrow.Timezone
	}
	return UnknownTimezone
}

func requestDates(day time.Time) [2]string {
	if day.IsZero() {
		return dayNames
	}
	return [2]string{
		day.Format(dayLayout),
		day.AddDate(0, 0, 1).Format(dayLayout),
	}
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// missingResults reports whether raw is absent or a falsy JSON value
// (null, false, 0 or "").
func missingResults(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	switch trimmed {
	case "", "null", "false", `""`:
		return true
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n == 0
	}
	return false
}

func isObject(raw json.RawMessage) bool {
	return strings.HasPrefix(strings.TrimSpace(string(raw)), "{")
}
