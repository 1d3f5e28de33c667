package handlers

import (
	"log"

	"auramart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for wishlists.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlists")
	wishlistRoutes.Get("/:userId", h.HandleGetWishlist)
	wishlistRoutes.Post("/:userId/items", h.HandleAddItem)
	wishlistRoutes.Delete("/:userId/items/:productId", h.HandleRemoveItem)
	wishlistRoutes.Delete("/:userId", h.HandleClearWishlist)
}

// WishlistItemRequest represents the request body for wishlist additions.
type WishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleGetWishlist retrieves a user's wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID := c.Params("userId")
	wishlist, err := h.service.GetWishlistByUserID(userID)
	if err != nil {
		log.Printf("Error getting wishlist for user %s: %v", userID, err)
		return respondError(c, "Could not retrieve wishlist", err)
	}
	return c.JSON(wishlist)
}

// HandleAddItem saves a product on the user's wishlist.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var req WishlistItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing wishlist item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	item, err := h.service.AddItemToWishlist(userID, req.ProductID)
	if err != nil {
		log.Printf("Error adding product %s to wishlist for user %s: %v", req.ProductID, userID, err)
		return respondError(c, "Could not add item to wishlist", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleRemoveItem removes a product from the user's wishlist.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	productID := c.Params("productId")
	if err := h.service.RemoveItemFromWishlist(userID, productID); err != nil {
		log.Printf("Error removing product %s from wishlist for user %s: %v", productID, userID, err)
		return respondError(c, "Could not remove item from wishlist", err)
	}
	return c.JSON(fiber.Map{"message": "Item removed from wishlist"})
}

// HandleClearWishlist removes every product from the user's wishlist.
func (h *WishlistHandler) HandleClearWishlist(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := h.service.ClearWishlist(userID); err != nil {
		log.Printf("Error clearing wishlist for user %s: %v", userID, err)
		return respondError(c, "Could not clear wishlist", err)
	}
	return c.JSON(fiber.Map{"message": "Wishlist cleared successfully"})
}
