package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"auramart/internal/apperrors"
	"auramart/internal/models"
	"auramart/internal/repositories"
	"auramart/pkg/rabbitmq"
)

// OrderItemRequest is a (product, quantity) pair in an order request.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderService owns the order lifecycle: creation with stock decrement,
// status transitions with compensating stock restoration, discount
// application, and cancellation. All stock mutations in the system go through
// this service.
type OrderService struct {
	uow          repositories.UnitOfWork
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	discountRepo repositories.DiscountRepository
	mqClient     *rabbitmq.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	uow repositories.UnitOfWork,
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	discountRepo repositories.DiscountRepository,
	mqClient *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		uow:          uow,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		discountRepo: discountRepo,
		mqClient:     mqClient,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByUser retrieves all orders placed by a user.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// CreateOrder validates stock, snapshots prices, decrements stock, and
// persists the order with status PENDING inside one transaction. Either every
// decrement and the order commit together or none of them do.
func (s *OrderService) CreateOrder(userID string, items []OrderItemRequest) (*models.Order, error) {
	var order *models.Order
	err := s.uow.Do(func(repos repositories.RepoSet) error {
		var txErr error
		order, txErr = s.CreateOrderWith(repos, userID, items)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventOrderCreated, map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})

	return order, nil
}

// CreateOrderWith runs order creation against an already-open transaction's
// repositories. The payment service uses this to fold order creation into its
// own unit of work; CreateOrder wraps it for standalone use.
func (s *OrderService) CreateOrderWith(repos repositories.RepoSet, userID string, items []OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", apperrors.ErrInvalidOrderItems)
	}

	if _, err := repos.Users.GetByID(userID); err != nil {
		return nil, err
	}

	var totalAmount float64
	orderItems := make([]models.OrderItem, 0, len(items))

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be positive for product %s: %w", item.ProductID, apperrors.ErrInvalidOrderItems)
		}

		product, err := repos.Products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("product %s (requested %d, available %d): %w",
				product.Name, item.Quantity, product.Stock, apperrors.ErrInsufficientStock)
		}

		// The guarded decrement re-checks stock at the row, so a concurrent
		// order racing past the read above still cannot oversell; the failed
		// guard rolls this whole order back.
		if err := repos.Products.DecrementStock(product.ID, item.Quantity); err != nil {
			return nil, err
		}

		// Price snapshot: the item keeps the price at order time even if the
		// product price changes later.
		itemPrice := product.Price
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			ItemPrice: itemPrice,
		})
		totalAmount += itemPrice * float64(item.Quantity)
	}

	order := &models.Order{
		UserID:      userID,
		Items:       orderItems,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
		OrderDate:   time.Now(),
	}

	if err := repos.Orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus transitions an order to a new status. Transitions are
// validated against the central table; moving to CANCELLED restores every
// item's stock, and because CANCELLED is terminal the restoration can only
// happen once per order.
func (s *OrderService) UpdateOrderStatus(orderID string, statusLabel string) (*models.Order, error) {
	newStatus, ok := models.ParseOrderStatus(statusLabel)
	if !ok {
		return nil, fmt.Errorf("%q: %w", statusLabel, apperrors.ErrInvalidStatus)
	}

	var order *models.Order
	err := s.uow.Do(func(repos repositories.RepoSet) error {
		current, err := repos.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if !current.CanTransitionTo(newStatus) {
			return fmt.Errorf("%s -> %s: %w", current.Status, newStatus, apperrors.ErrInvalidTransition)
		}

		if newStatus == models.OrderStatusCancelled {
			for _, item := range current.Items {
				if err := repos.Products.IncrementStock(item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}

		// Compare-and-set on the status read above: if a concurrent
		// transition got there first, this fails and the transaction rolls
		// back, including any stock restoration, so restoration can never
		// run twice for one order.
		if err := repos.Orders.UpdateStatus(orderID, current.Status, newStatus); err != nil {
			return err
		}

		order, err = repos.Orders.GetByID(orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if newStatus == models.OrderStatusCancelled {
		s.publishEvent(rabbitmq.EventOrderCancelled, map[string]interface{}{
			"order_id": order.ID,
			"user_id":  order.UserID,
		})
	}

	return order, nil
}

// CancelOrder cancels an order, restoring each item's product stock.
func (s *OrderService) CancelOrder(orderID string) (bool, error) {
	if _, err := s.UpdateOrderStatus(orderID, string(models.OrderStatusCancelled)); err != nil {
		return false, err
	}
	return true, nil
}

// ApplyDiscount attaches a discount to an order and records the discounted
// amount. The order total itself is never mutated; re-applying a different
// discount overwrites the previous one.
func (s *OrderService) ApplyDiscount(orderID, discountID string) (*models.Order, error) {
	var order *models.Order
	err := s.uow.Do(func(repos repositories.RepoSet) error {
		current, err := repos.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		discount, err := repos.Discounts.GetByID(discountID)
		if err != nil {
			return err
		}
		if !discount.ValidAt(time.Now()) {
			return fmt.Errorf("discount %s: %w", discount.Code, apperrors.ErrDiscountNotValid)
		}

		discounted := current.TotalAmount - current.TotalAmount*(discount.Percentage/100)
		if err := repos.Orders.ApplyDiscount(orderID, discountID, discounted); err != nil {
			return err
		}

		order, err = repos.Orders.GetByID(orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CalculateOrderTotal sums live product prices times quantities. It is used
// to estimate the payment-intent amount before an order exists; stored order
// totals come from price snapshots instead.
func (s *OrderService) CalculateOrderTotal(items []OrderItemRequest) (float64, error) {
	var total float64
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return 0, err
		}
		total += product.Price * float64(item.Quantity)
	}
	return total, nil
}

// publishEvent publishes a domain event, logging failures instead of failing
// the already-committed operation.
func (s *OrderService) publishEvent(eventType string, payload map[string]interface{}) {
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
