package handlers

import (
	"log"

	"auramart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Get("/:userId", h.HandleGetCart)
	cartRoutes.Post("/:userId/items", h.HandleAddItem)
	cartRoutes.Put("/:userId/items/:productId", h.HandleUpdateItemQuantity)
	cartRoutes.Delete("/:userId/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/:userId", h.HandleClearCart)
}

// CartItemRequest represents the request body for cart item operations.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleGetCart retrieves a user's cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := c.Params("userId")
	cart, err := h.service.GetCartByUserID(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return respondError(c, "Could not retrieve cart", err)
	}
	return c.JSON(cart)
}

// HandleAddItem adds a product to the user's cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	cart, err := h.service.AddItemToCart(userID, req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %s to cart for user %s: %v", req.ProductID, userID, err)
		return respondError(c, "Could not add item to cart", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// HandleUpdateItemQuantity sets the quantity of a product in the cart.
func (h *CartHandler) HandleUpdateItemQuantity(c *fiber.Ctx) error {
	userID := c.Params("userId")
	productID := c.Params("productId")
	var req struct {
		Quantity int `json:"quantity" validate:"required,gt=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	cart, err := h.service.UpdateItemQuantity(userID, productID, req.Quantity)
	if err != nil {
		log.Printf("Error updating quantity of product %s for user %s: %v", productID, userID, err)
		return respondError(c, "Could not update cart item", err)
	}
	return c.JSON(cart)
}

// HandleRemoveItem removes a product from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	productID := c.Params("productId")
	cart, err := h.service.RemoveItemFromCart(userID, productID)
	if err != nil {
		log.Printf("Error removing product %s from cart for user %s: %v", productID, userID, err)
		return respondError(c, "Could not remove item from cart", err)
	}
	return c.JSON(cart)
}

// HandleClearCart empties the user's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := h.service.ClearCart(userID); err != nil {
		log.Printf("Error clearing cart for user %s: %v", userID, err)
		return respondError(c, "Could not clear cart", err)
	}
	return c.JSON(fiber.Map{"message": "Cart cleared successfully"})
}
