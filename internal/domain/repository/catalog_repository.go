// Package repository defines the data-access interfaces of the domain.
package repository

import (
	"ordergen/internal/domain/entity"
)

// CatalogRepository provides the product catalog. Implementations read
// from external storage; callers load once and keep the result.
type CatalogRepository interface {
	// Load returns all catalog products in storage order. Duplicate
	// identifiers pass through unaltered.
	Load() ([]entity.Product, error)
}
