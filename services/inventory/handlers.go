package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReserveRequest representa a requisição de reserva de estoque
type ReserveRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// InventoryHandler contém os handlers HTTP para inventário
type InventoryHandler struct {
	useCase *InventoryUseCase
	tracer  trace.Tracer
}

// NewInventoryHandler cria uma nova instância de InventoryHandler
func NewInventoryHandler(useCase *InventoryUseCase, tracer trace.Tracer) *InventoryHandler {
	return &InventoryHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// ListItems retorna todos os itens do inventário
func (h *InventoryHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.ListItems(c.Request.Context()))
}

// GetItem busca um item pelo ID
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	item, err := h.useCase.GetItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem sobrescreve quantity e/ou reserved, conforme presentes no corpo
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var upd ItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := h.useCase.UpdateItem(c.Request.Context(), id, upd)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ReserveItem reserva unidades de um item
func (h *InventoryHandler) ReserveItem(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "reserve_inventory")
	defer span.End()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	span.SetAttributes(
		attribute.Int("item_id", id),
		attribute.Int("quantity", req.Quantity),
	)

	item, err := h.useCase.ReserveItem(ctx, id, req.Quantity)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient inventory"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reserve inventory"})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// HealthCheck verifica a saúde do serviço
func (h *InventoryHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "inventory-service",
	})
}
