package services_test

import (
	"fmt"
	"testing"
	"time"

	"auramart/internal/apperrors"
	"auramart/internal/models"
	"auramart/internal/repositories"
	"auramart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetActive() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByBrand(brand string) ([]models.Product, error) {
	args := m.Called(brand)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	args := m.Called(categoryID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByPriceRange(min, max float64) ([]models.Product, error) {
	args := m.Called(min, max)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Search(filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetNewArrivals(since time.Time) ([]models.Product, error) {
	args := m.Called(since)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetStats() (*models.ProductStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductStats), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(id string, qty int) error {
	args := m.Called(id, qty)
	return args.Error(0)
}

func (m *MockProductRepository) IncrementStock(id string, qty int) error {
	args := m.Called(id, qty)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Stock: 100},
		{ID: "2", Name: "Product B", Price: 20.0, Stock: 50},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetActiveProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	active := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Stock: 100, IsActive: true},
	}

	mockRepo.On("GetActive").Return(active, nil).Once()

	products, err := service.GetActiveProducts()
	assert.NoError(t, err)
	assert.Equal(t, active, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Price: 10.0, Stock: 100}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product 99: %w", apperrors.ErrProductNotFound)).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByBrand(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	branded := []models.Product{
		{ID: "1", Name: "Runner Alpha", Brand: "Aura", Price: 10.0, Stock: 5},
	}

	mockRepo.On("GetByBrand", "Aura").Return(branded, nil).Once()

	products, err := service.GetProductsByBrand("Aura")
	assert.NoError(t, err)
	assert.Equal(t, branded, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SearchProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	minPrice := 10.0
	filter := repositories.ProductFilter{Name: "Runner", MinPrice: &minPrice}
	matches := []models.Product{
		{ID: "1", Name: "Runner Alpha", Price: 15.0, Stock: 5},
	}

	mockRepo.On("Search", filter).Return(matches, nil).Once()

	products, err := service.SearchProducts(filter)
	assert.NoError(t, err)
	assert.Equal(t, matches, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetNewArrivals(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	arrivals := []models.Product{
		{ID: "1", Name: "Fresh Drop", Price: 30.0, Stock: 3, IsActive: true},
	}

	// The cutoff must be midnight of the current week's Monday.
	mockRepo.On("GetNewArrivals", mock.MatchedBy(func(since time.Time) bool {
		now := time.Now()
		if since.After(now) || now.Sub(since) > 7*24*time.Hour {
			return false
		}
		return since.Weekday() == time.Monday &&
			since.Hour() == 0 && since.Minute() == 0 && since.Second() == 0
	})).Return(arrivals, nil).Once()

	products, err := service.GetNewArrivals()
	assert.NoError(t, err)
	assert.Equal(t, arrivals, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductStatistics(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	stats := &models.ProductStats{
		TotalCount:          3,
		ActiveCount:         2,
		InactiveCount:       1,
		MinimumPrice:        10.0,
		MaximumPrice:        30.0,
		AveragePrice:        20.0,
		TotalInventoryValue: 250.0,
		CountByBrand:        map[string]int64{"Aura": 2, "Nova": 1},
	}

	mockRepo.On("GetStats").Return(stats, nil).Once()

	got, err := service.GetProductStatistics()
	assert.NoError(t, err)
	assert.Equal(t, stats, got)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "New Product", Price: 50.0, Stock: 20}

	// Test successful creation
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	updatedProduct := &models.Product{ID: "1", Name: "Product A Updated", Price: 12.0, Stock: 95}

	// Test successful update
	mockRepo.On("Update", updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(updatedProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update failure (e.g., product not found in repo)
	missing := &models.Product{ID: "99", Name: "NonExistent", Price: 1.0, Stock: 1}
	mockRepo.On("Update", missing).Return(fmt.Errorf("product 99: %w", apperrors.ErrProductNotFound)).Once()
	err = service.UpdateProduct(missing)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Test successful deletion
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (e.g., product not found)
	mockRepo.On("Delete", "99").Return(fmt.Errorf("product 99: %w", apperrors.ErrProductNotFound)).Once()
	err = service.DeleteProduct("99")
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}
