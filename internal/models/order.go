package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// allowedTransitions is the central transition table. DELIVERED and CANCELLED
// are terminal; cancelling an already-cancelled order is rejected so stock
// restoration can only ever run once per order.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ParseOrderStatus converts a status label into an OrderStatus.
// It reports false for unrecognized labels.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	_, ok := allowedTransitions[status]
	return status, ok
}

// CanTransitionTo reports whether the order may move from its current status
// to the target status.
func (o *Order) CanTransitionTo(target OrderStatus) bool {
	for _, next := range allowedTransitions[o.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// OrderItem is a single line within an order. ItemPrice is the product price
// captured at order time; it is never recomputed from the live product.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	ItemPrice float64 `json:"item_price"`
}

// Order represents a customer order. Orders are never deleted, only
// transitioned to CANCELLED.
type Order struct {
	ID               string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID           string      `json:"user_id" gorm:"type:varchar(36);index" validate:"required"`
	Items            []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount      float64     `json:"total_amount"`
	DiscountedAmount *float64    `json:"discounted_amount,omitempty"`
	DiscountID       *string     `json:"discount_id,omitempty" gorm:"type:varchar(36)"`
	Status           OrderStatus `json:"status" gorm:"type:varchar(20)"`
	OrderDate        time.Time   `json:"order_date"`
	Payment          *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
	gorm.Model
}
