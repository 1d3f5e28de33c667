package services

import (
	"errors"

	"auramart/internal/apperrors"
	"auramart/internal/models"
	"auramart/internal/repositories"
)

// CartService handles a user's pending selection. Cart line totals track the
// live product price; only order items snapshot prices.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewCartService creates a new CartService.
func NewCartService(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// GetCartByUserID retrieves a user's cart.
func (s *CartService) GetCartByUserID(userID string) (*models.Cart, error) {
	return s.cartRepo.GetByUserID(userID)
}

// AddItemToCart adds a product to the user's cart, creating the cart if
// needed. Adding a product already in the cart merges the quantities.
func (s *CartService) AddItemToCart(userID, productID string, quantity int) (*models.Cart, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCartNotFound) {
			return nil, err
		}
		cart = &models.Cart{UserID: userID}
		if err := s.cartRepo.Create(cart); err != nil {
			return nil, err
		}
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			cart.Items[i].ItemTotal = product.Price * float64(cart.Items[i].Quantity)
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			ItemTotal: product.Price * float64(quantity),
		})
	}

	cart.TotalAmount = cartTotal(cart.Items)
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(userID)
}

// UpdateItemQuantity sets the quantity of a product already in the cart.
func (s *CartService) UpdateItemQuantity(userID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			cart.Items[i].ItemTotal = product.Price * float64(quantity)
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.ErrProductNotFound
	}

	cart.TotalAmount = cartTotal(cart.Items)
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(userID)
}

// RemoveItemFromCart removes a product from the cart.
func (s *CartService) RemoveItemFromCart(userID, productID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.RemoveItem(cart.ID, productID); err != nil {
		return nil, err
	}

	cart, err = s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	cart.TotalAmount = cartTotal(cart.Items)
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(userID string) error {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		return err
	}
	cart.Items = nil
	cart.TotalAmount = 0
	return s.cartRepo.Save(cart)
}

func cartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.ItemTotal
	}
	return total
}
