package models

import "gorm.io/gorm"

// CartItem is a single product entry in a cart. ItemTotal tracks the live
// product price, unlike order items which snapshot it.
type CartItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string  `json:"cart_id" gorm:"type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	ItemTotal float64 `json:"item_total"`
}

// Cart holds a user's pending selection, one cart per user.
type Cart struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Items       []CartItem `json:"items" gorm:"foreignKey:CartID"`
	TotalAmount float64    `json:"total_amount"`
	gorm.Model
}
