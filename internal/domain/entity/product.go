// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields serialize as bare JSON numbers, matching the
	// catalog file format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is one purchasable entry of the catalog. Products are loaded
// once at startup and are immutable for the process lifetime.
type Product struct {
	ID    string          `json:"id"`    // Unique identifier within the catalog.
	Name  string          `json:"name"`  // Display name.
	Price decimal.Decimal `json:"price"` // Unit price, non-negative.
}
