package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"PriceLens/internal/config"
	"PriceLens/internal/model"
)

// ExtractListings locates every product container matched by the selector
// rules and returns one Listing per well-formed container. A container
// missing any of the name/price/brand child elements is skipped and counted;
// the rest of the page is still processed.
func ExtractListings(r io.Reader, rules config.ExtractionRules) (listings []model.Listing, skipped int, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("parse html: %w", err)
	}

	doc.Find(rules.Container).Each(func(_ int, s *goquery.Selection) {
		nameSel := s.Find(rules.Name).First()
		priceSel := s.Find(rules.Price).First()
		brandSel := s.Find(rules.Brand).First()
		if nameSel.Length() == 0 || priceSel.Length() == 0 || brandSel.Length() == 0 {
			skipped++
			return
		}
		listings = append(listings, model.Listing{
			Name:  strings.TrimSpace(nameSel.Text()),
			Price: strings.ReplaceAll(strings.TrimSpace(priceSel.Text()), ",", ""),
			Brand: strings.TrimSpace(brandSel.Text()),
		})
	})

	return listings, skipped, nil
}
