// Package forms turns the console's form fields into backend requests.
package forms

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"mysterystays/dto"
	"mysterystays/models"
)

var radixPrefixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

// Number coerces a form value the way a browser's Number() does, except that values it
// cannot read become 0 instead of NaN.
func Number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	lower := strings.ToLower(s)
	if base, ok := radixPrefixes[lower[:min(2, len(lower))]]; ok {
		n, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			return 0
		}
		return float64(n)
	}
	// ParseFloat accepts these spellings, Number() does not.
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Int coerces like Number and truncates toward zero.
func Int(s string) int {
	return int(Number(s))
}

// List splits a comma-separated value and trims each item. Like the browser's
// split(','), an empty value gives one empty item.
func List(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func ParseScan(values url.Values) dto.ScanRequest {
	return dto.ScanRequest{
		City:     values.Get("city"),
		CheckIn:  values.Get("check_in"),
		CheckOut: values.Get("check_out"),
	}
}

func ParseAddProperty(values url.Values) dto.PropertyRequest {
	return dto.PropertyRequest{
		Name:          values.Get("name"),
		OriginalPrice: Number(values.Get("original_price")),
		Amenities:     List(values.Get("amenities")),
		Bedrooms:      Int(values.Get("bedrooms")),
		Location: models.Location{
			City:    values.Get("city"),
			Country: values.Get("country"),
		},
	}
}

func ParseRegisterPreferences(values url.Values) dto.RegisterPreferencesRequest {
	return dto.RegisterPreferencesRequest{
		UserID: values.Get("user_id"),
		Preferences: dto.Preferences{
			Amenities: List(values.Get("amenities")),
			PriceMax:  dto.Float(Number(values.Get("price_max"))),
			Bedrooms:  dto.Int(Int(values.Get("bedrooms"))),
		},
	}
}

func ParseFindMatches(values url.Values) string {
	return values.Get("user_id")
}
