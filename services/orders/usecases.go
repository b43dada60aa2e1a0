package main

import (
	"context"
	"errors"
	"log"
	"time"
)

var ErrMissingFields = errors.New("missing required fields")

// CreateOrderRequest representa a requisição para criar um pedido
type CreateOrderRequest struct {
	CustomerID  string      `json:"customerId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

// OrderUseCase contém a lógica de negócio dos pedidos
type OrderUseCase struct {
	repository      Repository
	metrics         *OrderMetrics
	processingDelay time.Duration
	completionDelay time.Duration
}

// NewOrderUseCase cria uma nova instância de OrderUseCase.
// processingDelay é o tempo até pending -> processing; completionDelay é o
// tempo adicional até processing -> completed.
func NewOrderUseCase(
	repository Repository,
	metrics *OrderMetrics,
	processingDelay time.Duration,
	completionDelay time.Duration,
) *OrderUseCase {
	return &OrderUseCase{
		repository:      repository,
		metrics:         metrics,
		processingDelay: processingDelay,
		completionDelay: completionDelay,
	}
}

// CreateOrder valida e cria um pedido, agendando o processamento assíncrono.
// A requisição retorna imediatamente com status pending; as duas transições
// seguintes rodam em timers próprios e nunca bloqueiam o caminho da resposta.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if req.CustomerID == "" || len(req.Items) == 0 || req.TotalAmount == 0 {
		uc.metrics.RecordFailure()
		return nil, ErrMissingFields
	}

	order := uc.repository.CreateOrder(ctx, req.CustomerID, req.Items, req.TotalAmount)
	uc.metrics.RecordCreation()

	uc.scheduleProcessing(order.ID, order.CreatedAt, order.TotalAmount)

	log.Printf("✅ Order created: %d", order.ID)
	return order, nil
}

// GetOrder busca um pedido pelo ID
func (uc *OrderUseCase) GetOrder(ctx context.Context, id int) (*Order, error) {
	return uc.repository.GetOrder(ctx, id)
}

// ListOrders retorna todos os pedidos na ordem de criação
func (uc *OrderUseCase) ListOrders(ctx context.Context) []Order {
	return uc.repository.ListOrders(ctx)
}

// scheduleProcessing agenda as duas transições de status do pedido.
// Cada callback captura o id por valor e é um no-op silencioso se o pedido
// já não estiver no status esperado quando o timer dispara.
func (uc *OrderUseCase) scheduleProcessing(orderID int, createdAt time.Time, totalAmount float64) {
	time.AfterFunc(uc.processingDelay, func() {
		ctx := context.Background()

		if !uc.repository.TransitionStatus(ctx, orderID, OrderStatusPending, OrderStatusProcessing) {
			log.Printf("ℹ️ [PROCESS] order %d not pending anymore, skipping", orderID)
			return
		}

		time.AfterFunc(uc.completionDelay, func() {
			if !uc.repository.TransitionStatus(ctx, orderID, OrderStatusProcessing, OrderStatusCompleted) {
				log.Printf("ℹ️ [COMPLETE] order %d not processing anymore, skipping", orderID)
				return
			}

			uc.metrics.RecordCompletion(totalAmount, time.Since(createdAt))
			log.Printf("✅ Order completed: %d", orderID)
		})
	})
}
