package services

import (
	"auramart/internal/models"
	"auramart/internal/repositories"
)

// UserService handles profile reads and updates. Registration and login live
// in AuthService.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateUser updates a user's profile fields.
func (s *UserService) UpdateUser(user *models.User) error {
	return s.repo.Update(user)
}

// DeleteUser removes a user account.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}
