package repositories

import "auramart/internal/models"

// PaymentRepository defines the interface for payment data access. Payments
// are immutable after creation; there is no update path.
type PaymentRepository interface {
	GetAll() ([]models.Payment, error)
	GetByID(id string) (*models.Payment, error)
	GetByOrderID(orderID string) (*models.Payment, error)
	GetByTransactionID(transactionID string) (*models.Payment, error)
	Create(payment *models.Payment) error
}
