package repositories

import (
	"time"

	"auramart/internal/models"
)

// DiscountRepository defines the interface for discount data access.
type DiscountRepository interface {
	GetAll() ([]models.Discount, error)
	GetByID(id string) (*models.Discount, error)
	GetByCode(code string) (*models.Discount, error)
	GetActive(now time.Time) ([]models.Discount, error)
	ExistsByCode(code string) (bool, error)
	Create(discount *models.Discount) error
	Update(discount *models.Discount) error
	Delete(id string) error
}
