package model

// Listing is one product entry extracted from a listing page.
type Listing struct {
	Name  string
	Price string // decimal text, thousands-separator commas stripped
	Brand string
}

// PriceObservation is a Listing tagged with the date it was observed.
// One observation equals one ledger row; it is immutable once written.
type PriceObservation struct {
	Name  string
	Price string
	Brand string
	Date  string // YYYY-MM-DD
}

// ProductHistory holds every price observed for one product, in ledger
// row order.
type ProductHistory struct {
	Name   string
	Prices []string
}
