package scraper

import (
	"context"

	"PriceLens/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Listings map[string][]model.Listing
	Errs     map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchListings(_ context.Context, pageURL string) ([]model.Listing, error) {
	if err, ok := m.Errs[pageURL]; ok {
		return nil, err
	}
	return m.Listings[pageURL], nil
}
