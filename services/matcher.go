package services

import (
	"strings"

	"mysterystays/models"

	"github.com/fiam/gounidecode/unidecode"
)

// normalizeAmenity folds case, accents and surrounding space so "Café " equals "cafe".
func normalizeAmenity(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// MatchesPreference reports whether a property satisfies every preference that is set.
func MatchesPreference(p models.Property, pref models.Preference) bool {
	if pref.PriceMax != nil && p.DiscountPrice > *pref.PriceMax {
		return false
	}
	if pref.Bedrooms != nil && p.Bedrooms != *pref.Bedrooms {
		return false
	}
	if len(pref.Amenities) > 0 {
		have := make(map[string]bool, len(p.Amenities))
		for _, a := range p.Amenities {
			have[normalizeAmenity(a)] = true
		}
		for _, want := range pref.Amenities {
			if !have[normalizeAmenity(want)] {
				return false
			}
		}
	}
	return true
}
