package main

import (
	"context"
	"fmt"
	"log"
)

// InventoryUseCase contém a lógica de negócio do inventário
type InventoryUseCase struct {
	repository InventoryRepository
	metrics    *InventoryMetrics
}

// NewInventoryUseCase cria uma nova instância de InventoryUseCase
func NewInventoryUseCase(repository InventoryRepository, metrics *InventoryMetrics) *InventoryUseCase {
	return &InventoryUseCase{
		repository: repository,
		metrics:    metrics,
	}
}

// GetItem busca um item pelo ID (conta como um check de inventário)
func (uc *InventoryUseCase) GetItem(ctx context.Context, id int) (*Item, error) {
	uc.metrics.RecordCheck()
	return uc.repository.GetItem(ctx, id)
}

// ListItems retorna todos os itens (conta como um check de inventário)
func (uc *InventoryUseCase) ListItems(ctx context.Context) []Item {
	uc.metrics.RecordCheck()
	return uc.repository.ListItems(ctx)
}

// UpdateItem sobrescreve os campos presentes na requisição
func (uc *InventoryUseCase) UpdateItem(ctx context.Context, id int, upd ItemUpdate) (*Item, error) {
	uc.metrics.RecordUpdate()

	item, err := uc.repository.UpdateItem(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to update item %d: %w", id, err)
	}

	log.Printf("✅ [UPDATE] item %d -> quantity=%d reserved=%d", item.ID, item.Quantity, item.Reserved)
	return item, nil
}

// ReserveItem reserva qty unidades do item, atomicamente
func (uc *InventoryUseCase) ReserveItem(ctx context.Context, id int, qty int) (*Item, error) {
	uc.metrics.RecordUpdate()

	item, err := uc.repository.ReserveItem(ctx, id, qty)
	if err != nil {
		log.Printf("❌ [RESERVE] item %d qty %d failed: %v", id, qty, err)
		return nil, err
	}

	log.Printf("✅ [RESERVE] item %d -> quantity=%d reserved=%d", item.ID, item.Quantity, item.Reserved)
	return item, nil
}
