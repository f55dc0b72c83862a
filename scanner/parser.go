package scanner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mysterystays/models"

	"github.com/PuerkitoBio/goquery"
)

// Airbnb rotates its class names; each list is tried in order until one yields results.
var (
	containerSelectors = []string{
		`[itemprop="itemListElement"]`,
		`div[data-testid="card-container"]`,
		`.c4mnd7m`,
		`.cy5jw6o`,
		`.gh7uyir`,
	}
	titleSelectors = []string{
		`[data-testid="listing-card-title"]`,
		`.t1jojoys`,
		`.a8jt5op`,
		`.t12u7nq4`,
	}
	priceSelectors = []string{
		`._1y74zjx`,
		`._tyxjp1`,
		`.a8jt5op`,
		`.pquyp1l`,
		`[data-testid="price-element"]`,
		`.prqafc0`,
	}
)

const (
	siteOrigin        = "https://www.airbnb.com"
	maxTitleLength    = 50
	maxParentLookups  = 5
	minFallbackTitle  = 5
	fallbackPriceHint = `span[aria-hidden="true"]`
)

// Parser extracts discounted listings from a search results page.
type Parser struct {
	Limit        int
	DiscountRate float64
}

func NewParser(limit int) *Parser {
	return &Parser{Limit: limit, DiscountRate: 0.5}
}

// ParseListings returns up to Limit listings found in htmlContent.
func (p *Parser) ParseListings(htmlContent, city string) ([]models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, sel := range containerSelectors {
		listings := p.parseCards(doc.Find(sel), city)
		if len(listings) > 0 {
			return listings, nil
		}
	}
	return p.parseLoosePrices(doc, city), nil
}

func (p *Parser) parseCards(cards *goquery.Selection, city string) []models.Listing {
	var listings []models.Listing
	cards.EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= p.Limit {
			return false
		}
		title := firstText(card, titleSelectors)
		priceText := firstText(card, priceSelectors)
		if title == "" || priceText == "" {
			return true
		}
		price, ok := ExtractPrice(priceText)
		if !ok {
			return true
		}

		listing := p.newListing(title, price, city)
		if href, exists := card.Find("a").First().Attr("href"); exists && href != "" {
			listing.URL = absoluteURL(href)
		}
		listings = append(listings, listing)
		return true
	})
	return listings
}

// parseLoosePrices looks for bare price spans and takes a title from a nearby ancestor.
func (p *Parser) parseLoosePrices(doc *goquery.Document, city string) []models.Listing {
	var listings []models.Listing
	doc.Find(fallbackPriceHint).EachWithBreak(func(_ int, span *goquery.Selection) bool {
		priceText := span.Text()
		if !strings.Contains(priceText, "$") && !strings.Contains(priceText, "€") {
			return true
		}
		price, ok := ExtractPrice(priceText)
		if !ok {
			return true
		}

		parent := span
		for i := 0; i < maxParentLookups; i++ {
			parent = parent.Parent()
			if parent.Length() == 0 {
				break
			}
			title := firstLine(parent.Text())
			if len(title) > minFallbackTitle {
				listings = append(listings, p.newListing(truncate(title, maxTitleLength), price, city))
				break
			}
		}
		return len(listings) < p.Limit
	})
	return listings
}

func (p *Parser) newListing(title string, price int, city string) models.Listing {
	return models.Listing{
		Title:         title,
		OriginalPrice: price,
		DiscountPrice: int(math.RoundToEven(float64(price) * p.DiscountRate)),
		City:          city,
	}
}

// ExtractPrice reads the digits of the first "$" amount in text, or of the whole text
// when there is no "$". "$1,250 night" gives 1250.
func ExtractPrice(text string) (int, bool) {
	if parts := strings.Split(text, "$"); len(parts) > 1 {
		text = parts[1]
	}
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	price, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return price, true
}

func firstText(s *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(s.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// firstLine returns the first line of a multi-line text block, or "" for a single line.
func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "\n") {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func absoluteURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return siteOrigin + href
	}
	return href
}
