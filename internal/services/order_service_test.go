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
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// orderTestEnv wires an OrderService against an in-memory SQLite database
// with real GORM repositories.
type orderTestEnv struct {
	db          *gorm.DB
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	service     *services.OrderService
}

func setupOrderEnv(t *testing.T) *orderTestEnv {
	t.Helper()

	// A named in-memory database so every connection in the pool sees the
	// same data, unique per test for isolation.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Discount{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	require.NoError(t, err)

	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	discountRepo := repositories.NewGORMDiscountRepository(db)
	uow := repositories.NewGORMUnitOfWork(db)

	service := services.NewOrderService(uow, orderRepo, productRepo, discountRepo, nil)

	return &orderTestEnv{
		db:          db,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		service:     service,
	}
}

func (env *orderTestEnv) seedUser(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{Username: "buyer", Email: "buyer@example.com", Password: "hashed"}
	require.NoError(t, repositories.NewGORMUserRepository(env.db).Create(user))
	return user
}

func (env *orderTestEnv) seedProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: price, Stock: stock, IsActive: true}
	require.NoError(t, env.productRepo.Create(product))
	return product
}

func (env *orderTestEnv) seedDiscount(t *testing.T, code string, pct float64, from, to time.Time) *models.Discount {
	t.Helper()
	discount := &models.Discount{Code: code, Percentage: pct, ValidFrom: from, ValidTo: to, IsActive: true}
	require.NoError(t, repositories.NewGORMDiscountRepository(env.db).Create(discount))
	return discount
}

func (env *orderTestEnv) stockOf(t *testing.T, productID string) int {
	t.Helper()
	product, err := env.productRepo.GetByID(productID)
	require.NoError(t, err)
	return product.Stock
}

func TestOrderService_CreateOrder(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 10)
	mouse := env.seedProduct(t, "Mouse", 25.00, 50)

	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 2},
		{ProductID: mouse.ID, Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 2400.00+75.00, order.TotalAmount)
	assert.Len(t, order.Items, 2)

	// Stock decremented per item.
	assert.Equal(t, 8, env.stockOf(t, laptop.ID))
	assert.Equal(t, 47, env.stockOf(t, mouse.ID))

	// Item prices are snapshots: changing the product price afterwards does
	// not touch the stored order.
	laptop.Price = 999.00
	require.NoError(t, env.productRepo.Update(laptop))

	reloaded, err := env.service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2475.00, reloaded.TotalAmount)
	for _, item := range reloaded.Items {
		if item.ProductID == laptop.ID {
			assert.Equal(t, 1200.00, item.ItemPrice)
		}
	}
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 10)
	mouse := env.seedProduct(t, "Mouse", 25.00, 2)

	// The second line overdraws, so the whole order must roll back,
	// including the laptop decrement that already happened.
	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
		{ProductID: mouse.ID, Quantity: 5},
	})
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Nil(t, order)

	assert.Equal(t, 10, env.stockOf(t, laptop.ID))
	assert.Equal(t, 2, env.stockOf(t, mouse.ID))

	orders, err := env.service.GetAllOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)

	_, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: "no-such-product", Quantity: 1},
	})
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestOrderService_CreateOrder_UnknownUser(t *testing.T) {
	env := setupOrderEnv(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 10)

	_, err := env.service.CreateOrder("no-such-user", []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Equal(t, 10, env.stockOf(t, laptop.ID))
}

func TestOrderService_CreateOrder_RejectsInvalidItems(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 10)

	// An order without lines is a client error, not a server one.
	_, err := env.service.CreateOrder(user.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrderItems)

	// So is a non-positive quantity.
	_, err = env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 0},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrderItems)

	_, err = env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: -2},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrderItems)

	assert.Equal(t, 10, env.stockOf(t, laptop.ID))
}

func TestOrderRepository_UpdateStatus_CompareAndSet(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 5)

	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// The write only lands if the row still holds the expected status.
	require.NoError(t, env.orderRepo.UpdateStatus(order.ID, models.OrderStatusPending, models.OrderStatusCancelled))

	// A second writer that also read PENDING loses the race: zero rows
	// match, so its transition is rejected instead of silently applied.
	err = env.orderRepo.UpdateStatus(order.ID, models.OrderStatusPending, models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	reloaded, err := env.service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, reloaded.Status)
}

func TestOrderService_CancelOrder_RestoresStockExactlyOnce(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 5)

	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, env.stockOf(t, laptop.ID))

	ok, err := env.service.CancelOrder(order.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, env.stockOf(t, laptop.ID))

	cancelled, err := env.service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	// CANCELLED is terminal: a second cancel is rejected and stock is not
	// restored again.
	ok, err = env.service.CancelOrder(order.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, 5, env.stockOf(t, laptop.ID))
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 5)

	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// Unknown label.
	_, err = env.service.UpdateOrderStatus(order.ID, "TELEPORTED")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	// PENDING cannot jump straight to DELIVERED.
	_, err = env.service.UpdateOrderStatus(order.ID, string(models.OrderStatusDelivered))
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	// The happy path walks the whole lifecycle.
	for _, next := range []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		updated, err := env.service.UpdateOrderStatus(order.ID, string(next))
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	// DELIVERED is terminal.
	_, err = env.service.UpdateOrderStatus(order.ID, string(models.OrderStatusCancelled))
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, 4, env.stockOf(t, laptop.ID))
}

func TestOrderService_CancelConfirmedOrder_RestoresStock(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 5)

	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 2},
	})
	require.NoError(t, err)

	_, err = env.service.UpdateOrderStatus(order.ID, string(models.OrderStatusConfirmed))
	require.NoError(t, err)

	_, err = env.service.UpdateOrderStatus(order.ID, string(models.OrderStatusCancelled))
	require.NoError(t, err)
	assert.Equal(t, 5, env.stockOf(t, laptop.ID))
}

func TestOrderService_ApplyDiscount(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 100.00, 5)
	now := time.Now()
	discount := env.seedDiscount(t, "SAVE20", 20, now.Add(-time.Hour), now.Add(time.Hour))

	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
	})
	require.NoError(t, err)

	updated, err := env.service.ApplyDiscount(order.ID, discount.ID)
	require.NoError(t, err)

	// The original total is never mutated; the discounted amount sits
	// alongside it.
	assert.Equal(t, 100.00, updated.TotalAmount)
	require.NotNil(t, updated.DiscountedAmount)
	assert.Equal(t, 80.00, *updated.DiscountedAmount)
	require.NotNil(t, updated.DiscountID)
	assert.Equal(t, discount.ID, *updated.DiscountID)
}

func TestOrderService_ApplyDiscount_OutsideWindow(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 100.00, 5)
	now := time.Now()
	expired := env.seedDiscount(t, "EXPIRED10", 10, now.Add(-48*time.Hour), now.Add(-24*time.Hour))

	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
	})
	require.NoError(t, err)

	_, err = env.service.ApplyDiscount(order.ID, expired.ID)
	assert.ErrorIs(t, err, apperrors.ErrDiscountNotValid)

	reloaded, err := env.service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.DiscountedAmount)
	assert.Nil(t, reloaded.DiscountID)
}

func TestOrderService_ApplyDiscount_UnknownDiscount(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 100.00, 5)

	order, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
	})
	require.NoError(t, err)

	_, err = env.service.ApplyDiscount(order.ID, "no-such-discount")
	assert.ErrorIs(t, err, apperrors.ErrDiscountNotFound)
}

func TestOrderService_CalculateOrderTotal(t *testing.T) {
	env := setupOrderEnv(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 10)
	mouse := env.seedProduct(t, "Mouse", 25.00, 50)

	total, err := env.service.CalculateOrderTotal([]services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
		{ProductID: mouse.ID, Quantity: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 1300.00, total)

	// Uses live prices: a price change shows up immediately.
	laptop.Price = 1000.00
	require.NoError(t, env.productRepo.Update(laptop))

	total, err = env.service.CalculateOrderTotal([]services.OrderItemRequest{
		{ProductID: laptop.ID, Quantity: 1},
		{ProductID: mouse.ID, Quantity: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 1100.00, total)

	_, err = env.service.CalculateOrderTotal([]services.OrderItemRequest{
		{ProductID: "no-such-product", Quantity: 1},
	})
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestOrderService_GetOrdersByUser(t *testing.T) {
	env := setupOrderEnv(t)
	user := env.seedUser(t)
	laptop := env.seedProduct(t, "Laptop", 1200.00, 10)

	for i := 0; i < 3; i++ {
		_, err := env.service.CreateOrder(user.ID, []services.OrderItemRequest{
			{ProductID: laptop.ID, Quantity: 1},
		})
		require.NoError(t, err)
	}

	orders, err := env.service.GetOrdersByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	orders, err = env.service.GetOrdersByUser("someone-else")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
