package scanner

import (
	"fmt"
	"strings"
	"testing"

	"mysterystays/models"

	"github.com/google/go-cmp/cmp"
)

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"$120 night", 120, true},
		{"$1,250 total", 1250, true},
		{"Was $200, now $150", 200, true},
		{"€95", 95, true},
		{"no price", 0, false},
		{"$", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ExtractPrice(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractPrice(%q) = %d, %v; want %d, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func card(title, price, href string) string {
	return fmt.Sprintf(`<div itemprop="itemListElement">
  <a href="%s"></a>
  <div data-testid="listing-card-title">%s</div>
  <span class="_tyxjp1">%s</span>
</div>`, href, title, price)
}

func TestParseListings_Cards(t *testing.T) {
	page := "<html><body>" +
		card("Loft in Alfama", "$125 night", "/rooms/1") +
		card("Studio by the sea", "$127 night", "https://www.airbnb.com/rooms/2") +
		card("", "$99 night", "/rooms/3") +
		card("No price here", "", "/rooms/4") +
		"</body></html>"

	got, err := NewParser(MaxListings).ParseListings(page, "Lisbon")
	if err != nil {
		t.Fatalf("ParseListings: %v", err)
	}

	want := []models.Listing{
		{Title: "Loft in Alfama", OriginalPrice: 125, DiscountPrice: 62, City: "Lisbon", URL: "https://www.airbnb.com/rooms/1"},
		{Title: "Studio by the sea", OriginalPrice: 127, DiscountPrice: 64, City: "Lisbon", URL: "https://www.airbnb.com/rooms/2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("listings mismatch (-want +got):\n%s", diff)
	}
}

func TestParseListings_Limit(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		b.WriteString(card(fmt.Sprintf("Listing %d", i), "$100", "/rooms/x"))
	}
	b.WriteString("</body></html>")

	got, err := NewParser(MaxListings).ParseListings(b.String(), "Paris")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != MaxListings {
		t.Fatalf("got %d listings, want %d", len(got), MaxListings)
	}
}

func TestParseListings_LoosePriceFallback(t *testing.T) {
	page := `<html><body>
<div class="unknown">
<div>Charming loft in Alfama
Entire rental unit</div>
<span aria-hidden="true">$120 night</span>
</div>
<span aria-hidden="true">4.92 rating</span>
</body></html>`

	got, err := NewParser(MaxListings).ParseListings(page, "Lisbon")
	if err != nil {
		t.Fatal(err)
	}
	want := []models.Listing{
		{Title: "Charming loft in Alfama", OriginalPrice: 120, DiscountPrice: 60, City: "Lisbon"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("listings mismatch (-want +got):\n%s", diff)
	}
}

func TestParseListings_NothingFound(t *testing.T) {
	got, err := NewParser(MaxListings).ParseListings("<html><body><p>Access denied</p></body></html>", "Berlin")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d listings, want 0", len(got))
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("é", 60)
	if got := truncate(long, maxTitleLength); len([]rune(got)) != maxTitleLength {
		t.Errorf("truncate kept %d runes", len([]rune(got)))
	}
	if got := truncate("short", maxTitleLength); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
}
