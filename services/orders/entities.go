package main

import (
	"time"
)

// Order representa um pedido no sistema
type Order struct {
	ID          int         `json:"id"`
	CustomerID  string      `json:"customerId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// OrderItem representa um item dentro de um pedido
type OrderItem struct {
	ItemID   int     `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderStatus representa os possíveis status de um pedido.
// As transições são sempre pending -> processing -> completed;
// "failed" existe apenas como resultado de validação na criação
// (pedidos falhos nunca são armazenados).
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusFailed     = "failed"
)

// NewOrder cria uma nova instância de Order com status pending
func NewOrder(id int, customerID string, items []OrderItem, totalAmount float64) *Order {
	return &Order{
		ID:          id,
		CustomerID:  customerID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      OrderStatusPending,
		CreatedAt:   time.Now(),
	}
}
