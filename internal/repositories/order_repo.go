package repositories

import "auramart/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// never deleted, only status-transitioned.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	// UpdateStatus moves the order from one status to another with a
	// compare-and-set on the current status, so two concurrent transitions
	// from the same state cannot both win.
	UpdateStatus(id string, from, to models.OrderStatus) error
	ApplyDiscount(id string, discountID string, discountedAmount float64) error
}
