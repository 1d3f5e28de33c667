package services

import (
	"errors"
	"fmt"
	"time"

	"auramart/internal/apperrors"
	"auramart/internal/models"
	"auramart/internal/repositories"
)

// WishlistService handles a user's saved products.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
	userRepo     repositories.UserRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(
	wishlistRepo repositories.WishlistRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// GetWishlistByUserID retrieves a user's wishlist.
func (s *WishlistService) GetWishlistByUserID(userID string) (*models.Wishlist, error) {
	return s.wishlistRepo.GetByUserID(userID)
}

// AddItemToWishlist saves a product on the user's wishlist, creating the
// wishlist if needed. Adding a product twice is a conflict.
func (s *WishlistService) AddItemToWishlist(userID, productID string) (*models.WishlistItem, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	wishlist, err := s.wishlistRepo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrWishlistNotFound) {
			return nil, err
		}
		wishlist = &models.Wishlist{UserID: userID}
		if err := s.wishlistRepo.Create(wishlist); err != nil {
			return nil, err
		}
	}

	if _, err := s.wishlistRepo.GetItem(wishlist.ID, productID); err == nil {
		return nil, fmt.Errorf("product %s already in wishlist: %w", productID, apperrors.ErrDuplicate)
	}

	item := &models.WishlistItem{
		WishlistID: wishlist.ID,
		ProductID:  productID,
		AddedAt:    time.Now(),
	}
	if err := s.wishlistRepo.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItemFromWishlist removes a product from the user's wishlist.
func (s *WishlistService) RemoveItemFromWishlist(userID, productID string) error {
	wishlist, err := s.wishlistRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	return s.wishlistRepo.RemoveItem(wishlist.ID, productID)
}

// ClearWishlist removes every product from the user's wishlist.
func (s *WishlistService) ClearWishlist(userID string) error {
	wishlist, err := s.wishlistRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	return s.wishlistRepo.ClearItems(wishlist.ID)
}
