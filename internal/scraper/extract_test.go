package scraper

import (
	"strings"
	"testing"

	"PriceLens/internal/config"
)

var testRules = config.ExtractionRules{
	Version:   "test-1",
	Container: "div.product-card",
	Name:      "div.product-name",
	Price:     "p.product-price",
	Brand:     "div.product-brand",
}

const listingPage = `
<html><body>
<div class="product-card">
  <div class="product-name">  Wagyu Sirloin  </div>
  <p class="product-price"> 1,234 </p>
  <div class="product-brand">Makro</div>
</div>
<div class="product-card">
  <div class="product-name">Pork Belly</div>
  <p class="product-price">189.50</p>
  <div class="product-brand">Betagro</div>
</div>
</body></html>`

func TestExtractListings(t *testing.T) {
	listings, skipped, err := ExtractListings(strings.NewReader(listingPage), testRules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped containers, got %d", skipped)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].Name != "Wagyu Sirloin" {
		t.Errorf("name not trimmed: %q", listings[0].Name)
	}
	if listings[0].Price != "1234" {
		t.Errorf("expected thousands separator stripped, got %q", listings[0].Price)
	}
	if listings[0].Brand != "Makro" {
		t.Errorf("unexpected brand: %q", listings[0].Brand)
	}
	if listings[1].Price != "189.50" {
		t.Errorf("unexpected price: %q", listings[1].Price)
	}
}

func TestExtractListings_MalformedContainerSkipped(t *testing.T) {
	// second container has no price element; it must be skipped without
	// losing the containers before or after it
	page := `
<div class="product-card">
  <div class="product-name">A</div>
  <p class="product-price">10</p>
  <div class="product-brand">X</div>
</div>
<div class="product-card">
  <div class="product-name">Broken</div>
  <div class="product-brand">X</div>
</div>
<div class="product-card">
  <div class="product-name">B</div>
  <p class="product-price">20</p>
  <div class="product-brand">Y</div>
</div>`
	listings, skipped, err := ExtractListings(strings.NewReader(page), testRules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped container, got %d", skipped)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].Name != "A" || listings[1].Name != "B" {
		t.Errorf("unexpected listings: %+v", listings)
	}
}

func TestExtractListings_NoContainers(t *testing.T) {
	listings, skipped, err := ExtractListings(strings.NewReader("<html><body><p>nothing here</p></body></html>"), testRules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 0 || skipped != 0 {
		t.Errorf("expected empty result, got %d listings, %d skipped", len(listings), skipped)
	}
}
