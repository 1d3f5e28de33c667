package models_test

import (
	"testing"

	"auramart/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	status, ok := models.ParseOrderStatus("PENDING")
	assert.True(t, ok)
	assert.Equal(t, models.OrderStatusPending, status)

	_, ok = models.ParseOrderStatus("pending")
	assert.False(t, ok)

	_, ok = models.ParseOrderStatus("TELEPORTED")
	assert.False(t, ok)
}

func TestOrderCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.OrderStatusPending, models.OrderStatusConfirmed, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusShipped, false},
		{models.OrderStatusPending, models.OrderStatusDelivered, false},
		{models.OrderStatusConfirmed, models.OrderStatusShipped, true},
		{models.OrderStatusConfirmed, models.OrderStatusCancelled, true},
		{models.OrderStatusConfirmed, models.OrderStatusDelivered, false},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{models.OrderStatusDelivered, models.OrderStatusCancelled, false},
		{models.OrderStatusCancelled, models.OrderStatusCancelled, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
	}

	for _, tc := range cases {
		order := &models.Order{Status: tc.from}
		assert.Equalf(t, tc.allowed, order.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
