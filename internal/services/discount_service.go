package services

import (
	"fmt"
	"time"

	"auramart/internal/apperrors"
	"auramart/internal/models"
	"auramart/internal/repositories"
)

// DiscountService handles discount code administration and lookups.
type DiscountService struct {
	repo repositories.DiscountRepository
}

// NewDiscountService creates a new DiscountService.
func NewDiscountService(repo repositories.DiscountRepository) *DiscountService {
	return &DiscountService{repo: repo}
}

// GetAllDiscounts retrieves all discounts.
func (s *DiscountService) GetAllDiscounts() ([]models.Discount, error) {
	return s.repo.GetAll()
}

// GetDiscountByID retrieves a discount by its ID.
func (s *DiscountService) GetDiscountByID(id string) (*models.Discount, error) {
	return s.repo.GetByID(id)
}

// GetDiscountByCode retrieves a discount by its unique code.
func (s *DiscountService) GetDiscountByCode(code string) (*models.Discount, error) {
	return s.repo.GetByCode(code)
}

// GetActiveDiscounts retrieves discounts whose validity window covers now.
func (s *DiscountService) GetActiveDiscounts() ([]models.Discount, error) {
	return s.repo.GetActive(time.Now())
}

// CreateDiscount creates a discount after checking the code is unused.
func (s *DiscountService) CreateDiscount(discount *models.Discount) error {
	exists, err := s.repo.ExistsByCode(discount.Code)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("discount code %q: %w", discount.Code, apperrors.ErrDuplicate)
	}
	return s.repo.Create(discount)
}

// UpdateDiscount updates an existing discount.
func (s *DiscountService) UpdateDiscount(discount *models.Discount) error {
	return s.repo.Update(discount)
}

// DeleteDiscount deletes a discount by its ID.
func (s *DiscountService) DeleteDiscount(id string) error {
	return s.repo.Delete(id)
}
