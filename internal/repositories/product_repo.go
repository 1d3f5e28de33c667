package repositories

import (
	"time"

	"auramart/internal/models"
)

// ProductFilter narrows a catalog search. Zero-valued fields are ignored.
type ProductFilter struct {
	Name     string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
}

// ProductRepository defines the interface for product data access.
//
// DecrementStock and IncrementStock are the only stock mutation paths; they
// are invoked by the order service inside a unit of work.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetActive() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByBrand(brand string) ([]models.Product, error)
	GetByCategory(categoryID string) ([]models.Product, error)
	GetByPriceRange(min, max float64) ([]models.Product, error)
	Search(filter ProductFilter) ([]models.Product, error)
	// GetNewArrivals retrieves active products created at or after the
	// given time.
	GetNewArrivals(since time.Time) ([]models.Product, error)
	GetStats() (*models.ProductStats, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically subtracts qty from the product's stock,
	// guarded so stock can never go negative.
	DecrementStock(id string, qty int) error
	// IncrementStock adds qty back to the product's stock.
	IncrementStock(id string, qty int) error
}
