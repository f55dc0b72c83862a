package demo

import (
	"bytes"
	"fmt"
	"io"

	"mysterystays/dto"

	"github.com/goccy/go-json"
)

// Result is everything one walkthrough produced. Booking and Reveal stay nil when
// their step was skipped.
type Result struct {
	Property            dto.PropertyRequest
	Preferences         dto.RegisterPreferencesRequest
	PropertyResponse    json.RawMessage
	PreferencesResponse json.RawMessage
	Matches             []json.RawMessage
	Booking             json.RawMessage
	Reveal              json.RawMessage
	Err                 error
}

// Section is one titled block of the rendered result.
type Section struct {
	Title string
	Body  string
}

var emptyObject = json.RawMessage("{}")

// Sections renders the five blocks in order. A skipped booking or reveal shows as {}.
func (r *Result) Sections() []Section {
	booking, reveal := r.Booking, r.Reveal
	if len(booking) == 0 {
		booking = emptyObject
	}
	if len(reveal) == 0 {
		reveal = emptyObject
	}
	return []Section{
		{Title: "Property Added", Body: pretty(r.Property)},
		{Title: "User Preferences Registered", Body: pretty(r.Preferences)},
		{Title: "Matches Found", Body: pretty(r.Matches)},
		{Title: "Booking Result", Body: pretty(booking)},
		{Title: "Reveal Location", Body: pretty(reveal)},
	}
}

// Render writes every section, then the error if a step failed.
func (r *Result) Render(w io.Writer) error {
	for _, s := range r.Sections() {
		if _, err := fmt.Fprintf(w, "%s:\n%s\n\n", s.Title, s.Body); err != nil {
			return err
		}
	}
	if r.Err != nil {
		if _, err := fmt.Fprintf(w, "Error: %v\n", r.Err); err != nil {
			return err
		}
	}
	return nil
}

// Pretty indents a JSON document by two spaces. Invalid input is returned unchanged.
func Pretty(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func pretty(v interface{}) string {
	if raw, ok := v.(json.RawMessage); ok {
		return Pretty(raw)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
