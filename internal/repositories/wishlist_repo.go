package repositories

import "auramart/internal/models"

// WishlistRepository defines the interface for wishlist data access. Each user
// has at most one wishlist.
type WishlistRepository interface {
	GetByUserID(userID string) (*models.Wishlist, error)
	Create(wishlist *models.Wishlist) error
	AddItem(item *models.WishlistItem) error
	GetItem(wishlistID, productID string) (*models.WishlistItem, error)
	RemoveItem(wishlistID, productID string) error
	ClearItems(wishlistID string) error
}
