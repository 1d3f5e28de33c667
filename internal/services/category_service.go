package services

import (
	"auramart/internal/models"
	"auramart/internal/repositories"
)

// CategoryService handles the category tree.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// GetRootCategories retrieves categories without a parent.
func (s *CategoryService) GetRootCategories() ([]models.Category, error) {
	return s.repo.GetRoots()
}

// GetSubCategories retrieves the direct children of a category.
func (s *CategoryService) GetSubCategories(parentID string) ([]models.Category, error) {
	if _, err := s.repo.GetByID(parentID); err != nil {
		return nil, err
	}
	return s.repo.GetChildren(parentID)
}

// CreateCategory creates a category, validating the parent when given.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if category.ParentCategoryID != nil {
		if _, err := s.repo.GetByID(*category.ParentCategoryID); err != nil {
			return err
		}
	}
	return s.repo.Create(category)
}

// UpdateCategory updates a category, validating the parent when given.
func (s *CategoryService) UpdateCategory(category *models.Category) error {
	if category.ParentCategoryID != nil {
		if _, err := s.repo.GetByID(*category.ParentCategoryID); err != nil {
			return err
		}
	}
	return s.repo.Update(category)
}

// DeleteCategory deletes a category by its ID.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}
