package repositories

import (
	"errors"
	"fmt"

	"auramart/internal/apperrors"
	"auramart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{db: db}
}

// GetByUserID retrieves a user's wishlist with its items.
func (r *GORMWishlistRepository) GetByUserID(userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.Preload("Items").First(&wishlist, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wishlist for user %s: %w", userID, apperrors.ErrWishlistNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return &wishlist, nil
}

// Create persists a new wishlist.
func (r *GORMWishlistRepository) Create(wishlist *models.Wishlist) error {
	if wishlist.ID == "" {
		wishlist.ID = uuid.New().String()
	}
	if err := r.db.Create(wishlist).Error; err != nil {
		return fmt.Errorf("failed to create wishlist: %w", err)
	}
	return nil
}

// AddItem persists a new wishlist item.
func (r *GORMWishlistRepository) AddItem(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return nil
}

// GetItem retrieves one product's entry in a wishlist.
func (r *GORMWishlistRepository) GetItem(wishlistID, productID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.First(&item, "wishlist_id = ? AND product_id = ?", wishlistID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s in wishlist %s: %w", productID, wishlistID, apperrors.ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist item: %w", err)
	}
	return &item, nil
}

// RemoveItem deletes one product's entry from a wishlist.
func (r *GORMWishlistRepository) RemoveItem(wishlistID, productID string) error {
	res := r.db.Delete(&models.WishlistItem{}, "wishlist_id = ? AND product_id = ?", wishlistID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s in wishlist %s: %w", productID, wishlistID, apperrors.ErrProductNotFound)
	}
	return nil
}

// ClearItems removes every item from the wishlist.
func (r *GORMWishlistRepository) ClearItems(wishlistID string) error {
	if err := r.db.Delete(&models.WishlistItem{}, "wishlist_id = ?", wishlistID).Error; err != nil {
		return fmt.Errorf("failed to clear wishlist %s: %w", wishlistID, err)
	}
	return nil
}
