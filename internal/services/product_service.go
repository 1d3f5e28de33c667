package services

import (
	"time"

	"auramart/internal/models"
	"auramart/internal/repositories"
)

// ProductService handles business logic related to products. Stock mutations
// are not exposed here; they belong to the order service.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetActiveProducts retrieves products available for sale.
func (s *ProductService) GetActiveProducts() ([]models.Product, error) {
	return s.repo.GetActive()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsByBrand retrieves all products of a brand.
func (s *ProductService) GetProductsByBrand(brand string) ([]models.Product, error) {
	return s.repo.GetByBrand(brand)
}

// GetProductsByCategory retrieves all products in a category.
func (s *ProductService) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	return s.repo.GetByCategory(categoryID)
}

// GetProductsByPriceRange retrieves products priced within [min, max].
func (s *ProductService) GetProductsByPriceRange(min, max float64) ([]models.Product, error) {
	return s.repo.GetByPriceRange(min, max)
}

// SearchProducts retrieves products matching the filter.
func (s *ProductService) SearchProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.Search(filter)
}

// GetNewArrivals retrieves active products added since the start of the
// current week.
func (s *ProductService) GetNewArrivals() ([]models.Product, error) {
	return s.repo.GetNewArrivals(startOfWeek(time.Now()))
}

// GetProductStatistics computes the catalog aggregate projection.
func (s *ProductService) GetProductStatistics() (*models.ProductStats, error) {
	return s.repo.GetStats()
}

// startOfWeek returns midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
