package repositories

import (
	"errors"
	"fmt"

	"auramart/internal/apperrors"
	"auramart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetByUserID retrieves a user's cart with its items.
func (r *GORMCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for user %s: %w", userID, apperrors.ErrCartNotFound)
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Create persists a new cart together with any items.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	ensureCartIDs(cart)
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// Save persists the cart and upserts its items.
func (r *GORMCartRepository) Save(cart *models.Cart) error {
	ensureCartIDs(cart)
	if err := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(cart).Error; err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// RemoveItem deletes one product's line from the cart.
func (r *GORMCartRepository) RemoveItem(cartID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "cart_id = ? AND product_id = ?", cartID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove item %s from cart %s: %w", productID, cartID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s in cart %s: %w", productID, cartID, apperrors.ErrProductNotFound)
	}
	return nil
}

// ClearItems removes every item from the cart.
func (r *GORMCartRepository) ClearItems(cartID string) error {
	if err := r.db.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	return nil
}

func ensureCartIDs(cart *models.Cart) {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	for i := range cart.Items {
		if cart.Items[i].ID == "" {
			cart.Items[i].ID = uuid.New().String()
		}
		cart.Items[i].CartID = cart.ID
	}
}
