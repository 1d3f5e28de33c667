package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"auramart/internal/apperrors"
	"auramart/internal/models"
	"auramart/internal/repositories"
	"auramart/pkg/rabbitmq"
	"auramart/pkg/stripegateway"
)

// PaymentGateway is the contract this service expects from the external
// payment processor.
type PaymentGateway interface {
	CreateIntent(amountMinorUnits int64, currency string) (*stripegateway.Intent, error)
	RetrieveIntent(id string) (*stripegateway.Intent, error)
}

// PaymentService completes the purchase flow: it verifies the external
// payment intent, creates the order (through the order service, in the same
// transaction), records the payment, and confirms the order.
type PaymentService struct {
	uow          repositories.UnitOfWork
	paymentRepo  repositories.PaymentRepository
	userRepo     repositories.UserRepository
	orderService *OrderService
	gateway      PaymentGateway
	currency     string
	mqClient     *rabbitmq.Client
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	uow repositories.UnitOfWork,
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	orderService *OrderService,
	gateway PaymentGateway,
	currency string,
	mqClient *rabbitmq.Client,
) *PaymentService {
	return &PaymentService{
		uow:          uow,
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		orderService: orderService,
		gateway:      gateway,
		currency:     currency,
		mqClient:     mqClient,
	}
}

// CreatePaymentIntent asks the gateway for a new intent covering the given
// amount and returns the client secret the frontend needs to confirm it.
func (s *PaymentService) CreatePaymentIntent(userID string, amount float64) (string, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return "", err
	}

	intent, err := s.gateway.CreateIntent(toMinorUnits(amount), s.currency)
	if err != nil {
		return "", fmt.Errorf("create intent: %v: %w", err, apperrors.ErrGateway)
	}
	return intent.ClientSecret, nil
}

// CompletePaymentAndCreateOrder verifies the intent settled at the gateway,
// then creates the order, the payment record, and the CONFIRMED status inside
// one transaction: a failure anywhere rolls back the order, its items, the
// stock decrements, and the payment together.
//
// The call is idempotent by intent id: if a payment for the intent already
// exists, it is returned unchanged and nothing is written, so a retried
// completion cannot decrement stock twice. The check is re-run inside the
// transaction and backed by the unique index on Payment.TransactionID, so
// two concurrent completions for the same intent cannot both commit: the
// loser's insert violates the index, its transaction rolls back (undoing
// its stock decrements), and the winner's payment is returned instead.
func (s *PaymentService) CompletePaymentAndCreateOrder(userID, paymentIntentID, paymentMethod string, items []OrderItemRequest) (*models.Payment, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}

	if existing, err := s.paymentRepo.GetByTransactionID(paymentIntentID); err == nil {
		log.Printf("Payment for intent %s already recorded, returning existing payment %s", paymentIntentID, existing.ID)
		return existing, nil
	}

	intent, err := s.gateway.RetrieveIntent(paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("retrieve intent %s: %v: %w", paymentIntentID, err, apperrors.ErrGateway)
	}
	if intent.Status != stripegateway.StatusSucceeded {
		return nil, fmt.Errorf("intent %s is %s: %w", paymentIntentID, intent.Status, apperrors.ErrPaymentNotCompleted)
	}

	// Live-price estimate, matching what the intent was created against.
	estimate, err := s.orderService.CalculateOrderTotal(items)
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	replayed := false
	err = s.uow.Do(func(repos repositories.RepoSet) error {
		// Re-check inside the transaction: a concurrent completion may have
		// committed between the fast-path check above and this point.
		if existing, err := repos.Payments.GetByTransactionID(paymentIntentID); err == nil {
			payment = existing
			replayed = true
			return nil
		}

		order, err := s.orderService.CreateOrderWith(repos, userID, items)
		if err != nil {
			return err
		}

		// The stored charge amount is the order's snapshot total, never a
		// second live-price pass, so payment and order cannot diverge.
		if order.TotalAmount != estimate {
			log.Printf("Warning: intent %s estimated %.2f but order %s totals %.2f",
				paymentIntentID, estimate, order.ID, order.TotalAmount)
		}

		payment = &models.Payment{
			OrderID:       order.ID,
			PaymentMethod: paymentMethod,
			Status:        models.PaymentStatusCompleted,
			Amount:        order.TotalAmount,
			PaymentDate:   time.Now(),
			TransactionID: paymentIntentID,
		}
		if err := repos.Payments.Create(payment); err != nil {
			return err
		}

		return repos.Orders.UpdateStatus(order.ID, models.OrderStatusPending, models.OrderStatusConfirmed)
	})
	if err != nil {
		// A unique-index violation on the transaction id means a concurrent
		// completion won the race; its committed payment is the answer.
		if existing, lookupErr := s.paymentRepo.GetByTransactionID(paymentIntentID); lookupErr == nil {
			log.Printf("Payment for intent %s recorded concurrently, returning existing payment %s", paymentIntentID, existing.ID)
			return existing, nil
		}
		return nil, err
	}
	if replayed {
		return payment, nil
	}

	s.publishEvent(rabbitmq.EventPaymentCompleted, map[string]interface{}{
		"payment_id":     payment.ID,
		"order_id":       payment.OrderID,
		"user_id":        userID,
		"amount":         payment.Amount,
		"transaction_id": payment.TransactionID,
	})

	return payment, nil
}

// GetAllPayments retrieves all payments, newest first.
func (s *PaymentService) GetAllPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}

// GetPaymentByID retrieves a payment by its ID.
func (s *PaymentService) GetPaymentByID(id string) (*models.Payment, error) {
	return s.paymentRepo.GetByID(id)
}

// GetPaymentByOrderID retrieves the payment linked to an order.
func (s *PaymentService) GetPaymentByOrderID(orderID string) (*models.Payment, error) {
	return s.paymentRepo.GetByOrderID(orderID)
}

// toMinorUnits converts a decimal amount to the smallest currency unit,
// truncating fractions of a cent.
func toMinorUnits(amount float64) int64 {
	return int64(math.Trunc(amount * 100))
}

func (s *PaymentService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
