package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher fetches pages over plain HTTP. It sees only server-rendered markup.
type CollyFetcher struct {
	base *colly.Collector
}

func NewCollyFetcher() *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent(defaultUserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(30 * time.Second)

	// one request at a time per host, spaced out
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*airbnb.*",
		Parallelism: 1,
		Delay:       2 * time.Second,
	})

	return &CollyFetcher{base: c}
}

func (f *CollyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Clone shares limits and transport but not callbacks.
	c := f.base.Clone()
	c.Context = ctx

	var (
		body     string
		fetchErr error
	)
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("fetch %s: status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}
	c.Wait()

	if fetchErr != nil {
		return "", fetchErr
	}
	return body, nil
}
