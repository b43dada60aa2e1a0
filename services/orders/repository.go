package main

import (
	"context"
	"errors"
	"sync"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository define a interface para operações de armazenamento de pedidos
type Repository interface {
	// CreateOrder aloca um id monotônico e armazena o pedido com status pending
	CreateOrder(ctx context.Context, customerID string, items []OrderItem, totalAmount float64) *Order

	// GetOrder busca um pedido pelo ID
	GetOrder(ctx context.Context, id int) (*Order, error)

	// ListOrders retorna todos os pedidos na ordem de inserção
	ListOrders(ctx context.Context) []Order

	// TransitionStatus avança o status do pedido somente se ele ainda
	// estiver em "from" (compare-and-set). Retorna false se o pedido não
	// existe ou já avançou.
	TransitionStatus(ctx context.Context, id int, from, to string) bool

	// CountByStatus retorna a distribuição atual de pedidos por status
	CountByStatus(ctx context.Context) map[string]int
}

// MemoryOrderRepository implementa Repository em memória.
// Todas as mutações passam por um único mutex; leituras devolvem cópias
// para que nenhuma goroutine observe um registro parcialmente escrito.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders []*Order
	byID   map[int]*Order
	nextID int
}

// NewMemoryOrderRepository cria uma nova instância de MemoryOrderRepository
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		byID:   make(map[int]*Order),
		nextID: 1,
	}
}

func (r *MemoryOrderRepository) CreateOrder(_ context.Context, customerID string, items []OrderItem, totalAmount float64) *Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := NewOrder(r.nextID, customerID, items, totalAmount)
	r.nextID++
	r.orders = append(r.orders, order)
	r.byID[order.ID] = order

	cp := *order
	return &cp
}

func (r *MemoryOrderRepository) GetOrder(_ context.Context, id int) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}

	cp := *order
	return &cp, nil
}

func (r *MemoryOrderRepository) ListOrders(_ context.Context) []Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, *order)
	}
	return out
}

func (r *MemoryOrderRepository) TransitionStatus(_ context.Context, id int, from, to string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[id]
	if !ok || order.Status != from {
		return false
	}

	order.Status = to
	return true
}

func (r *MemoryOrderRepository) CountByStatus(_ context.Context) map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := map[string]int{
		OrderStatusPending:    0,
		OrderStatusProcessing: 0,
		OrderStatusCompleted:  0,
		OrderStatusFailed:     0,
	}
	for _, order := range r.orders {
		counts[order.Status]++
	}
	return counts
}
