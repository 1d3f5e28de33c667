package handlers

import (
	"log"
	"strconv"

	"auramart/internal/models"
	"auramart/internal/repositories"
	"auramart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/active", h.HandleGetActiveProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/new-arrivals", h.HandleGetNewArrivals)
	productRoutes.Get("/stats", h.HandleGetProductStats)
	productRoutes.Get("/price-range", h.HandleGetProductsByPriceRange)
	productRoutes.Get("/brand/:brand", h.HandleGetProductsByBrand)
	productRoutes.Get("/category/:categoryId", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetActiveProducts retrieves products available for sale.
func (h *ProductHandler) HandleGetActiveProducts(c *fiber.Ctx) error {
	products, err := h.service.GetActiveProducts()
	if err != nil {
		log.Printf("Error getting active products: %v", err)
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return respondError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleGetProductsByBrand retrieves all products of a brand.
func (h *ProductHandler) HandleGetProductsByBrand(c *fiber.Ctx) error {
	brand := c.Params("brand")
	products, err := h.service.GetProductsByBrand(brand)
	if err != nil {
		log.Printf("Error getting products for brand %s: %v", brand, err)
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductsByCategory retrieves all products in a category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	products, err := h.service.GetProductsByCategory(categoryID)
	if err != nil {
		log.Printf("Error getting products for category %s: %v", categoryID, err)
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductsByPriceRange retrieves products priced within the min/max
// query bounds.
func (h *ProductHandler) HandleGetProductsByPriceRange(c *fiber.Ctx) error {
	min, err := strconv.ParseFloat(c.Query("min", "0"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid min price",
			"error":   err.Error(),
		})
	}
	max, err := strconv.ParseFloat(c.Query("max"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid max price",
			"error":   err.Error(),
		})
	}

	products, err := h.service.GetProductsByPriceRange(min, max)
	if err != nil {
		log.Printf("Error getting products in price range: %v", err)
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleSearchProducts retrieves products matching the name/brand/price query
// filters. Absent filters don't narrow the result.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Name:  c.Query("name"),
		Brand: c.Query("brand"),
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid min_price",
				"error":   err.Error(),
			})
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid max_price",
				"error":   err.Error(),
			})
		}
		filter.MaxPrice = &max
	}

	products, err := h.service.SearchProducts(filter)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return respondError(c, "Could not search products", err)
	}
	return c.JSON(products)
}

// HandleGetNewArrivals retrieves active products added this week.
func (h *ProductHandler) HandleGetNewArrivals(c *fiber.Ctx) error {
	products, err := h.service.GetNewArrivals()
	if err != nil {
		log.Printf("Error getting new arrivals: %v", err)
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductStats returns the catalog aggregate projection.
func (h *ProductHandler) HandleGetProductStats(c *fiber.Ctx) error {
	stats, err := h.service.GetProductStatistics()
	if err != nil {
		log.Printf("Error computing product stats: %v", err)
		return respondError(c, "Could not compute product statistics", err)
	}
	return c.JSON(stats)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return validationError(c, err)
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = productID

	if err := h.validate.Struct(product); err != nil {
		return validationError(c, err)
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return respondError(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return respondError(c, "Could not delete product", err)
	}
	return c.JSON(fiber.Map{
		"message": "Product " + productID + " deleted successfully",
	})
}
