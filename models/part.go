package models

import "strings"

// Part is a spare part as stored on a booking: a selected instance of a
// catalogue part, with the pricing fields frozen at selection time.
type Part struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	SKU              string `json:"sku"`
	Tier             string `json:"tier,omitempty"`
	StockSummary     string `json:"stockSummary,omitempty"`
	PriceForConsumer Money  `json:"priceForConsumer"`
	PriceForYou      Money  `json:"priceForYou"`
	Category         string `json:"category,omitempty"`
	Group            string `json:"group,omitempty"`
}

// InStock reports availability from the free-text stock summary the supplier
// feed provides ("In stock.", "Out of stock.", "In Stock - 3 left", ...).
func (p Part) InStock() bool {
	return strings.Contains(strings.ToLower(p.StockSummary), "in stock")
}

// CatalogPart is catalogue-wide reference data, distinct from the parts
// stored on a booking. AlreadyAdded is a view flag set when a booking
// already carries the part; flagged parts stay in the view.
type CatalogPart struct {
	Part
	Groups        []string `json:"groups,omitempty"`
	CategoryImage string   `json:"categoryImage,omitempty"`
	AlreadyAdded  bool     `json:"alreadyAdded,omitempty"`
}
