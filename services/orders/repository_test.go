package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryOrderRepository_CreateOrder(t *testing.T) {
	// Arrange
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	items := []OrderItem{{ItemID: 1, Name: "Laptop", Quantity: 1, Price: 999.99}}

	// Act
	first := repo.CreateOrder(ctx, "customer-1", items, 999.99)
	second := repo.CreateOrder(ctx, "customer-2", items, 999.99)

	// Assert
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, OrderStatusPending, first.Status)
	assert.Equal(t, "customer-1", first.CustomerID)
}

func TestMemoryOrderRepository_GetOrder_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	order, err := repo.GetOrder(context.Background(), 99)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryOrderRepository_ListOrders_InsertionOrder(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	items := []OrderItem{{ItemID: 1, Name: "Mouse", Quantity: 2, Price: 29.99}}

	for _, customer := range []string{"c1", "c2", "c3"} {
		repo.CreateOrder(ctx, customer, items, 59.98)
	}

	orders := repo.ListOrders(ctx)

	assert.Len(t, orders, 3)
	for i, order := range orders {
		assert.Equal(t, i+1, order.ID)
	}
}

func TestMemoryOrderRepository_TransitionStatus(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	items := []OrderItem{{ItemID: 1, Name: "Keyboard", Quantity: 1, Price: 79.99}}
	order := repo.CreateOrder(ctx, "c1", items, 79.99)

	// Forward transitions succeed exactly once
	assert.True(t, repo.TransitionStatus(ctx, order.ID, OrderStatusPending, OrderStatusProcessing))
	assert.False(t, repo.TransitionStatus(ctx, order.ID, OrderStatusPending, OrderStatusProcessing))
	assert.True(t, repo.TransitionStatus(ctx, order.ID, OrderStatusProcessing, OrderStatusCompleted))

	// No backward transition
	assert.False(t, repo.TransitionStatus(ctx, order.ID, OrderStatusCompleted, OrderStatusPending))

	got, err := repo.GetOrder(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, got.Status)
}

func TestMemoryOrderRepository_TransitionStatus_MissingOrder(t *testing.T) {
	repo := NewMemoryOrderRepository()

	// A timer firing for a record that never existed is a silent no-op
	assert.False(t, repo.TransitionStatus(context.Background(), 123, OrderStatusPending, OrderStatusProcessing))
}

func TestMemoryOrderRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	items := []OrderItem{{ItemID: 1, Name: "Monitor", Quantity: 1, Price: 299.99}}

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			repo.CreateOrder(ctx, "c", items, 299.99)
		}()
	}
	wg.Wait()

	orders := repo.ListOrders(ctx)
	assert.Len(t, orders, n)

	seen := make(map[int]bool, n)
	for _, order := range orders {
		assert.False(t, seen[order.ID], "duplicate order id %d", order.ID)
		seen[order.ID] = true
	}
}

func TestMemoryOrderRepository_CountByStatus(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	items := []OrderItem{{ItemID: 2, Name: "Mouse", Quantity: 1, Price: 29.99}}

	a := repo.CreateOrder(ctx, "c1", items, 29.99)
	repo.CreateOrder(ctx, "c2", items, 29.99)
	repo.TransitionStatus(ctx, a.ID, OrderStatusPending, OrderStatusProcessing)

	counts := repo.CountByStatus(ctx)

	assert.Equal(t, 1, counts[OrderStatusPending])
	assert.Equal(t, 1, counts[OrderStatusProcessing])
	assert.Equal(t, 0, counts[OrderStatusCompleted])
	assert.Equal(t, 0, counts[OrderStatusFailed])
}
