package main

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ItemUpdate carrega os campos opcionais de um update parcial: somente os
// campos presentes na requisição mutam o registro. Nenhuma validação cruzada
// entre quantity e reserved é feita aqui (lacuna conhecida, preservada).
type ItemUpdate struct {
	Quantity *int `json:"quantity"`
	Reserved *int `json:"reserved"`
}

// InventoryRepository define as operações sobre o inventário
type InventoryRepository interface {
	// GetItem busca um item pelo ID
	GetItem(ctx context.Context, id int) (*Item, error)

	// ListItems retorna todos os itens
	ListItems(ctx context.Context) []Item

	// UpdateItem sobrescreve os campos presentes em upd
	UpdateItem(ctx context.Context, id int, upd ItemUpdate) (*Item, error)

	// ReserveItem move qty unidades de quantity para reserved em um único
	// passo atômico; rejeita sem mutação se quantity < qty
	ReserveItem(ctx context.Context, id int, qty int) (*Item, error)

	// Stats recalcula as métricas derivadas do inventário
	Stats(ctx context.Context) InventoryStats
}

// MemoryInventoryRepository implementa InventoryRepository em memória.
// Um único mutex cobre todas as mutações; leituras devolvem cópias.
type MemoryInventoryRepository struct {
	mu    sync.Mutex
	items []*Item
	byID  map[int]*Item
}

// NewMemoryInventoryRepository cria o repositório com o catálogo inicial
func NewMemoryInventoryRepository(seed []Item) *MemoryInventoryRepository {
	r := &MemoryInventoryRepository{
		byID: make(map[int]*Item, len(seed)),
	}
	for i := range seed {
		item := seed[i]
		r.items = append(r.items, &item)
		r.byID[item.ID] = &item
	}
	return r
}

func (r *MemoryInventoryRepository) GetItem(_ context.Context, id int) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}

	cp := *item
	return &cp, nil
}

func (r *MemoryInventoryRepository) ListItems(_ context.Context) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out
}

func (r *MemoryInventoryRepository) UpdateItem(_ context.Context, id int, upd ItemUpdate) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}

	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}
	if upd.Reserved != nil {
		item.Reserved = *upd.Reserved
	}

	cp := *item
	return &cp, nil
}

func (r *MemoryInventoryRepository) ReserveItem(_ context.Context, id int, qty int) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}

	// Check and mutate in the same critical section: no interleaving
	// reservation may observe an intermediate state.
	if item.Quantity < qty {
		return nil, ErrInsufficientStock
	}

	item.Quantity -= qty
	item.Reserved += qty

	cp := *item
	return &cp, nil
}

func (r *MemoryInventoryRepository) Stats(_ context.Context) InventoryStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats InventoryStats
	for _, item := range r.items {
		stats.TotalValue += float64(item.Quantity) * item.Price
		switch {
		case item.Quantity == 0:
			stats.OutOfStock++
		case item.Quantity < lowStockThreshold:
			stats.LowStock++
		}
	}
	return stats
}
