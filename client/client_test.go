package client

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mysterystays/dto"

	"github.com/goccy/go-json"
)

func TestDo_ReturnsJSONRegardlessOfStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"status":"error","message":"name is required"}`)
	}))
	defer srv.Close()

	raw, err := New(srv.URL).AddProperty(context.Background(), dto.PropertyRequest{})
	if err != nil {
		t.Fatalf("AddProperty: %v", err)
	}
	if string(raw) != `{"status":"error","message":"name is required"}` {
		t.Errorf("raw = %s", raw)
	}
}

func TestDo_NonJSONIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer srv.Close()

	_, err := New(srv.URL).Reveal(context.Background(), "book_1")
	var nonJSON *NonJSONError
	if !stderrors.As(err, &nonJSON) || nonJSON.Status != http.StatusBadGateway {
		t.Fatalf("err = %v, want NonJSONError with 502", err)
	}
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := New(url).Scan(context.Background(), dto.ScanRequest{}); err == nil {
		t.Fatal("expected an error from a closed server")
	}
}

func TestRequests(t *testing.T) {
	type seen struct {
		method, path, contentType string
		body                      map[string]interface{}
	}
	var got []seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := seen{method: r.Method, path: r.URL.Path, contentType: r.Header.Get("Content-Type")}
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&s.body)
		}
		got = append(got, s)

		switch r.URL.Path {
		case "/properties/match/user 1":
			io.WriteString(w, `{"status":"success","matches":[{"id":"prop_3","name":"Loft"},{"id":"prop_4"}]}`)
		case "/bookings/create":
			io.WriteString(w, `{"booking_id":"book_8","status":"confirmed"}`)
		default:
			io.WriteString(w, `{"status":"success"}`)
		}
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	ctx := context.Background()

	if _, err := c.RegisterPreferences(ctx, dto.RegisterPreferencesRequest{UserID: "user 1"}); err != nil {
		t.Fatal(err)
	}
	matches, err := c.Matches(ctx, "user 1")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches.Matches) != 2 || matches.FirstID() != "prop_3" {
		t.Errorf("matches = %s, first = %q", matches.Raw, matches.FirstID())
	}
	booking, err := c.CreateBooking(ctx, dto.BookingRequest{UserID: "user 1", PropertyID: "prop_3"})
	if err != nil {
		t.Fatal(err)
	}
	if booking.BookingID != "book_8" {
		t.Errorf("BookingID = %q", booking.BookingID)
	}

	if len(got) != 3 {
		t.Fatalf("saw %d requests, want 3", len(got))
	}
	if got[0].method != http.MethodPost || got[0].path != "/users/preferences" || got[0].contentType != "application/json" {
		t.Errorf("preferences request = %+v", got[0])
	}
	if got[0].body["user_id"] != "user 1" {
		t.Errorf("preferences body = %v", got[0].body)
	}
	if got[1].method != http.MethodGet || got[1].contentType != "" {
		t.Errorf("match request = %+v", got[1])
	}
	if got[2].body["property_id"] != "prop_3" {
		t.Errorf("booking body = %v", got[2].body)
	}
}

func TestMatchesAndBookingTolerateOddBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bookings/create":
			io.WriteString(w, `{"status":"failed","reason":"Property not found"}`)
		default:
			io.WriteString(w, `["not","an","object"]`)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	matches, err := c.Matches(context.Background(), "user1")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches.Matches) != 0 || matches.FirstID() != "" {
		t.Errorf("matches = %+v", matches)
	}

	booking, err := c.CreateBooking(context.Background(), dto.BookingRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if booking.BookingID != "" {
		t.Errorf("BookingID = %q, want empty", booking.BookingID)
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	if got := New("").BaseURL(); got != DefaultBaseURL {
		t.Errorf("BaseURL = %q", got)
	}
}

func TestWithHTTPClient_TimeoutApplies(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	if _, err := c.Scan(context.Background(), dto.ScanRequest{}); err == nil {
		t.Fatal("expected a timeout error")
	}
}
