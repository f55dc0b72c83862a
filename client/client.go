// Package client calls the Mystery Stays HTTP API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mysterystays/dto"
	"mysterystays/services/logger"

	"github.com/goccy/go-json"
)

// DefaultBaseURL is the backend origin the console and demo use unless configured.
const DefaultBaseURL = "http://127.0.0.1:5001"

// DefaultTimeout covers a full scan round trip.
const DefaultTimeout = 90 * time.Second

// Client is a thin JSON client. It never inspects HTTP status codes: any JSON body is
// handed back to the caller, success or not.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client for baseURL. An empty baseURL means DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends one request and returns the response body if it is JSON.
// body is encoded as JSON when non-nil.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("%s %s", method, req.URL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if !json.Valid(raw) {
		return nil, &NonJSONError{Status: resp.StatusCode, Body: string(raw)}
	}
	c.logger.Debug("%s %s -> %d", method, path, resp.StatusCode)
	return raw, nil
}

// NonJSONError is returned when the backend answers with something other than JSON.
type NonJSONError struct {
	Status int
	Body   string
}

func (e *NonJSONError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("non-JSON response (HTTP %d): %s", e.Status, body)
}

func (c *Client) AddProperty(ctx context.Context, property dto.PropertyRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/properties/add", property)
}

func (c *Client) RegisterPreferences(ctx context.Context, req dto.RegisterPreferencesRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/users/preferences", req)
}

// MatchResult keeps the raw body and the decoded matches list.
type MatchResult struct {
	Raw     json.RawMessage
	Matches []json.RawMessage
}

// FirstID returns the id of the first match, or "" when there is none.
func (m *MatchResult) FirstID() string {
	if len(m.Matches) == 0 {
		return ""
	}
	var first struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(m.Matches[0], &first); err != nil {
		return ""
	}
	return first.ID
}

func (c *Client) Matches(ctx context.Context, userID string) (*MatchResult, error) {
	raw, err := c.Do(ctx, http.MethodGet, "/properties/match/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	result := &MatchResult{Raw: raw}
	var body struct {
		Matches []json.RawMessage `json:"matches"`
	}
	// a body that is not an object simply has no matches
	if err := json.Unmarshal(raw, &body); err == nil {
		result.Matches = body.Matches
	}
	return result, nil
}

// BookingResult keeps the raw body and the booking id, if the backend issued one.
type BookingResult struct {
	Raw       json.RawMessage
	BookingID string
}

func (c *Client) CreateBooking(ctx context.Context, req dto.BookingRequest) (*BookingResult, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/bookings/create", req)
	if err != nil {
		return nil, err
	}
	result := &BookingResult{Raw: raw}
	var body struct {
		BookingID interface{} `json:"booking_id"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if id, ok := body.BookingID.(string); ok {
			result.BookingID = id
		}
	}
	return result, nil
}

func (c *Client) Reveal(ctx context.Context, bookingID string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, "/bookings/reveal/"+url.PathEscape(bookingID), nil)
}

func (c *Client) Scan(ctx context.Context, req dto.ScanRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/scan_airbnb", req)
}
