package scraper

import (
	"context"
	"log"
	"time"

	"PriceLens/internal/model"
)

// Collector fetches every configured URL in sequence and tags the results
// with the run date. A failed URL contributes zero rows and one log line;
// the remaining URLs are still fetched.
type Collector struct {
	Fetcher Fetcher
	URLs    []string
	Now     func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, urls []string) *Collector {
	return &Collector{Fetcher: fetcher, URLs: urls, Now: time.Now}
}

// Collect returns all observations fetched in this run, dated YYYY-MM-DD.
func (c *Collector) Collect(ctx context.Context) []model.PriceObservation {
	date := c.Now().Format("2006-01-02")

	var observations []model.PriceObservation
	for _, pageURL := range c.URLs {
		listings, err := c.Fetcher.FetchListings(ctx, pageURL)
		if err != nil {
			log.Printf("[ERROR] fetch %s: %v", pageURL, err)
			continue
		}
		for _, l := range listings {
			observations = append(observations, model.PriceObservation{
				Name:  l.Name,
				Price: l.Price,
				Brand: l.Brand,
				Date:  date,
			})
		}
	}
	return observations
}
