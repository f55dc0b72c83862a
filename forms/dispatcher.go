package forms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"mysterystays/client"
	"mysterystays/demo"
)

// Form identifies one of the console's forms.
type Form string

const (
	FormScan                Form = "scan"
	FormAddProperty         Form = "add_property"
	FormRegisterPreferences Form = "register_preferences"
	FormFindMatches         Form = "find_matches"
)

// Forms lists every form in page order.
var Forms = []Form{FormScan, FormAddProperty, FormRegisterPreferences, FormFindMatches}

// Dispatcher sends a submitted form to its endpoint.
type Dispatcher struct {
	client *client.Client
}

func NewDispatcher(c *client.Client) *Dispatcher {
	return &Dispatcher{client: c}
}

// Dispatch issues exactly one request for form and returns the response body indented.
// The HTTP status is not looked at; only transport failures and non-JSON bodies are errors.
func (d *Dispatcher) Dispatch(ctx context.Context, form Form, values url.Values) (string, error) {
	method, path, body, err := Request(form, values)
	if err != nil {
		return "", err
	}
	raw, err := d.client.Do(ctx, method, path, body)
	if err != nil {
		return "", err
	}
	return demo.Pretty(raw), nil
}

// Request maps a form submission to its method, path and JSON body.
func Request(form Form, values url.Values) (method, path string, body interface{}, err error) {
	switch form {
	case FormScan:
		return http.MethodPost, "/scan_airbnb", ParseScan(values), nil
	case FormAddProperty:
		return http.MethodPost, "/properties/add", ParseAddProperty(values), nil
	case FormRegisterPreferences:
		return http.MethodPost, "/users/preferences", ParseRegisterPreferences(values), nil
	case FormFindMatches:
		return http.MethodGet, "/properties/match/" + url.PathEscape(ParseFindMatches(values)), nil, nil
	default:
		return "", "", nil, fmt.Errorf("unknown form %q", form)
	}
}
