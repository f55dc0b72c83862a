package scanner

import (
	"context"
	"fmt"
	"net/url"

	"mysterystays/dto"
	"mysterystays/errors"
	"mysterystays/models"
	"mysterystays/services/logger"
)

// MaxListings caps the listings returned by one scan.
const MaxListings = 10

// Scanner finds discounted stays on the Airbnb search page of a city.
type Scanner struct {
	fetcher Fetcher
	parser  *Parser
	logger  logger.Logger
}

func NewScanner(fetcher Fetcher, log logger.Logger) *Scanner {
	if log == nil {
		log = logger.Nop{}
	}
	return &Scanner{
		fetcher: fetcher,
		parser:  NewParser(MaxListings),
		logger:  log,
	}
}

// NewFetcher picks a fetch backend by name: "chromedp" or anything else for colly.
func NewFetcher(name string) Fetcher {
	if name == "chromedp" {
		return NewChromedpFetcher()
	}
	return NewCollyFetcher()
}

// SearchURL builds the search results URL for one adult.
func SearchURL(city, checkIn, checkOut string) string {
	q := url.Values{}
	q.Set("checkin", checkIn)
	q.Set("checkout", checkOut)
	q.Set("adults", "1")
	return fmt.Sprintf("%s/s/%s/homes?%s", siteOrigin, url.PathEscape(city), q.Encode())
}

// Scan fetches and parses the search page for req. Empty request fields take defaults.
// An empty result is not an error: the page may be blocked or its markup changed.
func (s *Scanner) Scan(ctx context.Context, req dto.ScanRequest) ([]models.Listing, error) {
	req = req.WithDefaults()
	target := SearchURL(req.City, req.CheckIn, req.CheckOut)
	s.logger.Info("scanning %s", target)

	html, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeScanFailed, "failed to fetch search page", err)
	}

	listings, err := s.parser.ParseListings(html, req.City)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeScanFailed, "failed to parse search page", err)
	}
	if len(listings) == 0 {
		s.logger.Info("no listings found for %s; page might be blocked or structure changed", req.City)
		listings = []models.Listing{}
	}
	return listings, nil
}
