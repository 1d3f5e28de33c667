package repositories

import (
	"errors"
	"fmt"
	"time"

	"auramart/internal/apperrors"
	"auramart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetActive retrieves all active products.
func (r *GORMProductRepository) GetActive() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_active = ?", true).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get active products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByBrand retrieves all products of a brand.
func (r *GORMProductRepository) GetByBrand(brand string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("brand = ?", brand).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for brand %s: %w", brand, err)
	}
	return products, nil
}

// GetByCategory retrieves all products in a category.
func (r *GORMProductRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for category %s: %w", categoryID, err)
	}
	return products, nil
}

// GetByPriceRange retrieves products priced within [min, max].
func (r *GORMProductRepository) GetByPriceRange(min, max float64) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("price >= ? AND price <= ?", min, max).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products in price range: %w", err)
	}
	return products, nil
}

// Search retrieves products matching the filter; unset fields don't narrow.
func (r *GORMProductRepository) Search(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// GetNewArrivals retrieves active products created at or after since.
func (r *GORMProductRepository) GetNewArrivals(since time.Time) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_active = ? AND created_at >= ?", true, since).
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get new arrivals: %w", err)
	}
	return products, nil
}

// GetStats computes the catalog aggregate projection in two queries: one for
// the scalar aggregates, one for the per-brand counts.
func (r *GORMProductRepository) GetStats() (*models.ProductStats, error) {
	var row struct {
		Total     int64
		Active    int64
		MinPrice  float64
		MaxPrice  float64
		AvgPrice  float64
		Inventory float64
	}
	err := r.db.Model(&models.Product{}).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active, " +
			"COALESCE(MIN(price), 0) AS min_price, " +
			"COALESCE(MAX(price), 0) AS max_price, " +
			"COALESCE(AVG(price), 0) AS avg_price, " +
			"COALESCE(SUM(price * stock), 0) AS inventory").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute product stats: %w", err)
	}

	var brandRows []struct {
		Brand string
		Count int64
	}
	if err := r.db.Model(&models.Product{}).
		Select("brand, COUNT(*) AS count").Group("brand").
		Scan(&brandRows).Error; err != nil {
		return nil, fmt.Errorf("failed to count products by brand: %w", err)
	}

	countByBrand := make(map[string]int64, len(brandRows))
	for _, b := range brandRows {
		countByBrand[b.Brand] = b.Count
	}

	return &models.ProductStats{
		TotalCount:          row.Total,
		ActiveCount:         row.Active,
		InactiveCount:       row.Total - row.Active,
		MinimumPrice:        row.MinPrice,
		MaximumPrice:        row.MaxPrice,
		AveragePrice:        row.AvgPrice,
		TotalInventoryValue: row.Inventory,
		CountByBrand:        countByBrand,
	}, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, apperrors.ErrProductNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, apperrors.ErrProductNotFound)
	}
	return nil
}

// DecrementStock subtracts qty from the product's stock with a guarded
// conditional update. The WHERE clause serializes concurrent decrements on
// the row and guarantees stock never goes negative; zero affected rows means
// the guard rejected the decrement.
func (r *GORMProductRepository) DecrementStock(id string, qty int) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s, requested %d: %w", id, qty, apperrors.ErrInsufficientStock)
	}
	return nil
}

// IncrementStock adds qty back to the product's stock.
func (r *GORMProductRepository) IncrementStock(id string, qty int) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to increment stock for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, apperrors.ErrProductNotFound)
	}
	return nil
}
