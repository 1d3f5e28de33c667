package repositories

import "auramart/internal/models"

// CartRepository defines the interface for cart data access. Each user has at
// most one cart.
type CartRepository interface {
	GetByUserID(userID string) (*models.Cart, error)
	Create(cart *models.Cart) error
	Save(cart *models.Cart) error
	RemoveItem(cartID, productID string) error
	ClearItems(cartID string) error
}
