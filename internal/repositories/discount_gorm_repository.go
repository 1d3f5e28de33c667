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

// GORMDiscountRepository is a GORM implementation of DiscountRepository.
type GORMDiscountRepository struct {
	db *gorm.DB
}

// NewGORMDiscountRepository creates a new instance of GORMDiscountRepository.
func NewGORMDiscountRepository(db *gorm.DB) *GORMDiscountRepository {
	return &GORMDiscountRepository{db: db}
}

// GetAll retrieves all discounts.
func (r *GORMDiscountRepository) GetAll() ([]models.Discount, error) {
	var discounts []models.Discount
	if err := r.db.Find(&discounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all discounts: %w", err)
	}
	return discounts, nil
}

// GetByID retrieves a discount by its ID.
func (r *GORMDiscountRepository) GetByID(id string) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.First(&discount, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("discount with ID %s: %w", id, apperrors.ErrDiscountNotFound)
		}
		return nil, fmt.Errorf("failed to get discount by ID %s: %w", id, err)
	}
	return &discount, nil
}

// GetByCode retrieves a discount by its unique code.
func (r *GORMDiscountRepository) GetByCode(code string) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.First(&discount, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("discount with code %s: %w", code, apperrors.ErrDiscountNotFound)
		}
		return nil, fmt.Errorf("failed to get discount by code %s: %w", code, err)
	}
	return &discount, nil
}

// GetActive retrieves active discounts whose validity window covers now.
func (r *GORMDiscountRepository) GetActive(now time.Time) ([]models.Discount, error) {
	var discounts []models.Discount
	if err := r.db.Where("is_active = ? AND valid_from <= ? AND valid_to >= ?", true, now, now).
		Find(&discounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get active discounts: %w", err)
	}
	return discounts, nil
}

// ExistsByCode reports whether a discount with the given code exists.
func (r *GORMDiscountRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Discount{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check discount code %s: %w", code, err)
	}
	return count > 0, nil
}

// Create creates a new discount.
func (r *GORMDiscountRepository) Create(discount *models.Discount) error {
	if discount.ID == "" {
		discount.ID = uuid.New().String()
	}
	if err := r.db.Create(discount).Error; err != nil {
		return fmt.Errorf("failed to create discount: %w", err)
	}
	return nil
}

// Update updates an existing discount.
func (r *GORMDiscountRepository) Update(discount *models.Discount) error {
	res := r.db.Save(discount)
	if res.Error != nil {
		return fmt.Errorf("failed to update discount: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("discount with ID %s: %w", discount.ID, apperrors.ErrDiscountNotFound)
	}
	return nil
}

// Delete deletes a discount by its ID.
func (r *GORMDiscountRepository) Delete(id string) error {
	res := r.db.Delete(&models.Discount{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete discount: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("discount with ID %s: %w", id, apperrors.ErrDiscountNotFound)
	}
	return nil
}
