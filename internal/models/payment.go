package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus is the state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Payment records a settled charge for exactly one order. Payments are
// created once at payment completion and never updated.
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID       string        `json:"order_id" gorm:"uniqueIndex;type:varchar(36)"`
	PaymentMethod string        `json:"payment_method" gorm:"type:varchar(50)"`
	Status        PaymentStatus `json:"status" gorm:"type:varchar(20)"`
	Amount        float64       `json:"amount"`
	PaymentDate   time.Time     `json:"payment_date"`
	TransactionID string        `json:"transaction_id" gorm:"uniqueIndex;type:varchar(255)"` // gateway payment intent id
	gorm.Model
}
