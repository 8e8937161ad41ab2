package scraper

import (
	"context"

	"PriceLens/internal/model"
)

// Fetcher defines the interface for fetching product listings from a page URL.
type Fetcher interface {
	FetchListings(ctx context.Context, pageURL string) ([]model.Listing, error)
	Name() string
}
