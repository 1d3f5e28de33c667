package handlers

import (
	"log"

	"auramart/internal/models"
	"auramart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DiscountHandler handles HTTP requests for discounts.
type DiscountHandler struct {
	service  *services.DiscountService
	validate *validator.Validate
}

// NewDiscountHandler creates a new DiscountHandler.
func NewDiscountHandler(service *services.DiscountService) *DiscountHandler {
	return &DiscountHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the discount routes with the Fiber app.
func (h *DiscountHandler) RegisterRoutes(router fiber.Router) {
	discountRoutes := router.Group("/discounts")
	discountRoutes.Get("/", h.HandleGetDiscounts)
	discountRoutes.Get("/active", h.HandleGetActiveDiscounts)
	discountRoutes.Get("/code/:code", h.HandleGetDiscountByCode)
	discountRoutes.Get("/:id", h.HandleGetDiscountByID)
	discountRoutes.Post("/", h.HandleCreateDiscount)
	discountRoutes.Put("/:id", h.HandleUpdateDiscount)
	discountRoutes.Delete("/:id", h.HandleDeleteDiscount)
}

// HandleGetDiscounts retrieves all discounts.
func (h *DiscountHandler) HandleGetDiscounts(c *fiber.Ctx) error {
	discounts, err := h.service.GetAllDiscounts()
	if err != nil {
		log.Printf("Error getting all discounts: %v", err)
		return respondError(c, "Could not retrieve discounts", err)
	}
	return c.JSON(discounts)
}

// HandleGetActiveDiscounts retrieves discounts currently in their window.
func (h *DiscountHandler) HandleGetActiveDiscounts(c *fiber.Ctx) error {
	discounts, err := h.service.GetActiveDiscounts()
	if err != nil {
		log.Printf("Error getting active discounts: %v", err)
		return respondError(c, "Could not retrieve discounts", err)
	}
	return c.JSON(discounts)
}

// HandleGetDiscountByCode retrieves a discount by its unique code.
func (h *DiscountHandler) HandleGetDiscountByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	discount, err := h.service.GetDiscountByCode(code)
	if err != nil {
		log.Printf("Error getting discount by code %s: %v", code, err)
		return respondError(c, "Could not retrieve discount", err)
	}
	return c.JSON(discount)
}

// HandleGetDiscountByID retrieves a discount by its ID.
func (h *DiscountHandler) HandleGetDiscountByID(c *fiber.Ctx) error {
	discountID := c.Params("id")
	discount, err := h.service.GetDiscountByID(discountID)
	if err != nil {
		log.Printf("Error getting discount by ID %s: %v", discountID, err)
		return respondError(c, "Could not retrieve discount", err)
	}
	return c.JSON(discount)
}

// HandleCreateDiscount creates a new discount.
func (h *DiscountHandler) HandleCreateDiscount(c *fiber.Ctx) error {
	var discount models.Discount
	if err := c.BodyParser(&discount); err != nil {
		log.Printf("Error parsing discount request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(discount); err != nil {
		return validationError(c, err)
	}

	if err := h.service.CreateDiscount(&discount); err != nil {
		log.Printf("Error creating discount: %v", err)
		return respondError(c, "Could not create discount", err)
	}
	return c.Status(fiber.StatusCreated).JSON(discount)
}

// HandleUpdateDiscount updates an existing discount.
func (h *DiscountHandler) HandleUpdateDiscount(c *fiber.Ctx) error {
	discountID := c.Params("id")
	var discount models.Discount
	if err := c.BodyParser(&discount); err != nil {
		log.Printf("Error parsing discount request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	discount.ID = discountID

	if err := h.validate.Struct(discount); err != nil {
		return validationError(c, err)
	}

	if err := h.service.UpdateDiscount(&discount); err != nil {
		log.Printf("Error updating discount %s: %v", discountID, err)
		return respondError(c, "Could not update discount", err)
	}
	return c.JSON(discount)
}

// HandleDeleteDiscount deletes a discount by its ID.
func (h *DiscountHandler) HandleDeleteDiscount(c *fiber.Ctx) error {
	discountID := c.Params("id")
	if err := h.service.DeleteDiscount(discountID); err != nil {
		log.Printf("Error deleting discount %s: %v", discountID, err)
		return respondError(c, "Could not delete discount", err)
	}
	return c.JSON(fiber.Map{
		"message": "Discount " + discountID + " deleted successfully",
	})
}
