package handlers

import (
	"log"

	"auramart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Get("/", h.HandleGetPayments)
	paymentRoutes.Get("/order/:orderId", h.HandleGetPaymentByOrderID)
	paymentRoutes.Get("/:id", h.HandleGetPaymentByID)
	paymentRoutes.Post("/intent", h.HandleCreatePaymentIntent)
	paymentRoutes.Post("/complete", h.HandleCompletePayment)
}

// CreateIntentRequest represents the request body for intent creation.
type CreateIntentRequest struct {
	UserID string  `json:"user_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CompletePaymentRequest represents the request body for payment completion.
type CompletePaymentRequest struct {
	UserID          string                      `json:"user_id" validate:"required"`
	PaymentIntentID string                      `json:"payment_intent_id" validate:"required"`
	PaymentMethod   string                      `json:"payment_method" validate:"required"`
	Items           []services.OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// HandleGetPayments retrieves all payments.
func (h *PaymentHandler) HandleGetPayments(c *fiber.Ctx) error {
	payments, err := h.service.GetAllPayments()
	if err != nil {
		log.Printf("Error getting all payments: %v", err)
		return respondError(c, "Could not retrieve payments", err)
	}
	return c.JSON(payments)
}

// HandleGetPaymentByID retrieves a payment by its ID.
func (h *PaymentHandler) HandleGetPaymentByID(c *fiber.Ctx) error {
	paymentID := c.Params("id")
	payment, err := h.service.GetPaymentByID(paymentID)
	if err != nil {
		log.Printf("Error getting payment by ID %s: %v", paymentID, err)
		return respondError(c, "Could not retrieve payment", err)
	}
	return c.JSON(payment)
}

// HandleGetPaymentByOrderID retrieves the payment linked to an order.
func (h *PaymentHandler) HandleGetPaymentByOrderID(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	payment, err := h.service.GetPaymentByOrderID(orderID)
	if err != nil {
		log.Printf("Error getting payment for order %s: %v", orderID, err)
		return respondError(c, "Could not retrieve payment", err)
	}
	return c.JSON(payment)
}

// HandleCreatePaymentIntent creates a gateway payment intent and returns its
// client secret.
func (h *PaymentHandler) HandleCreatePaymentIntent(c *fiber.Ctx) error {
	var req CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing intent request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	clientSecret, err := h.service.CreatePaymentIntent(req.UserID, req.Amount)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return respondError(c, "Could not create payment intent", err)
	}
	return c.JSON(fiber.Map{"client_secret": clientSecret})
}

// HandleCompletePayment verifies the intent and creates the order and payment
// in one shot.
func (h *PaymentHandler) HandleCompletePayment(c *fiber.Ctx) error {
	var req CompletePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing completion request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	payment, err := h.service.CompletePaymentAndCreateOrder(req.UserID, req.PaymentIntentID, req.PaymentMethod, req.Items)
	if err != nil {
		log.Printf("Error completing payment %s: %v", req.PaymentIntentID, err)
		return respondError(c, "Could not complete payment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}
