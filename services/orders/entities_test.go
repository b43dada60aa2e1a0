package main

import (
	"testing"
	"time"
)

func TestNewOrder(t *testing.T) {
	// Arrange
	id := 42
	customerID := "customer-456"
	items := []OrderItem{
		{ItemID: 1, Name: "Laptop", Quantity: 1, Price: 999.99},
	}
	totalAmount := 999.99

	// Act
	order := NewOrder(id, customerID, items, totalAmount)

	// Assert
	if order.ID != id {
		t.Errorf("Expected ID %d, got %d", id, order.ID)
	}
	if order.CustomerID != customerID {
		t.Errorf("Expected CustomerID %s, got %s", customerID, order.CustomerID)
	}
	if len(order.Items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(order.Items))
	}
	if order.TotalAmount != totalAmount {
		t.Errorf("Expected TotalAmount %f, got %f", totalAmount, order.TotalAmount)
	}
	if order.Status != OrderStatusPending {
		t.Errorf("Expected Status %s, got %s", OrderStatusPending, order.Status)
	}
	if order.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	// Verify that CreatedAt is within a reasonable time range
	now := time.Now()
	if order.CreatedAt.After(now) || order.CreatedAt.Before(now.Add(-time.Second)) {
		t.Error("CreatedAt is not within expected time range")
	}
}

func TestOrderStatus(t *testing.T) {
	// Test that constants are defined correctly
	if OrderStatusPending != "pending" {
		t.Errorf("Expected OrderStatusPending to be 'pending', got %s", OrderStatusPending)
	}
	if OrderStatusProcessing != "processing" {
		t.Errorf("Expected OrderStatusProcessing to be 'processing', got %s", OrderStatusProcessing)
	}
	if OrderStatusCompleted != "completed" {
		t.Errorf("Expected OrderStatusCompleted to be 'completed', got %s", OrderStatusCompleted)
	}
	if OrderStatusFailed != "failed" {
		t.Errorf("Expected OrderStatusFailed to be 'failed', got %s", OrderStatusFailed)
	}
}
