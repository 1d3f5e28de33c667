package models

import (
	"time"

	"gorm.io/gorm"
)

// WishlistItem marks a product a user wants to keep an eye on.
type WishlistItem struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WishlistID string    `json:"wishlist_id" gorm:"type:varchar(36);index"`
	ProductID  string    `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	AddedAt    time.Time `json:"added_at"`
}

// Wishlist holds a user's saved products, one wishlist per user.
type Wishlist struct {
	ID     string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string         `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Items  []WishlistItem `json:"items" gorm:"foreignKey:WishlistID"`
	gorm.Model
}
