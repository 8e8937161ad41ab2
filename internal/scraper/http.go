package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"PriceLens/internal/config"
	"PriceLens/internal/model"
)

// HTTPFetcher fetches listing pages over HTTP and extracts products using
// the configured selector rules.
type HTTPFetcher struct {
	client *resty.Client
	rules  config.ExtractionRules
}

// NewHTTPFetcher creates a fetcher with an explicit request timeout and
// optional proxy support.
func NewHTTPFetcher(rules config.ExtractionRules, userAgent, proxyURL string, timeout time.Duration) *HTTPFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &HTTPFetcher{client: client, rules: rules}
}

func (f *HTTPFetcher) Name() string { return "http" }

func (f *HTTPFetcher) FetchListings(ctx context.Context, pageURL string) ([]model.Listing, error) {
	resp, err := f.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", pageURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get %s: status %d", pageURL, resp.StatusCode())
	}

	listings, skipped, err := ExtractListings(bytes.NewReader(resp.Body()), f.rules)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", pageURL, err)
	}
	if skipped > 0 {
		log.Printf("[WARN] %s: skipped %d malformed product containers (rules %s)", pageURL, skipped, f.rules.Version)
	}
	return listings, nil
}
