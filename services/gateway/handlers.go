package main

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	serviceOrder     = "order"
	serviceInventory = "inventory"
)

// GatewayHandler encaminha requisições para os serviços downstream.
// O gateway é stateless: nunca toca estado de negócio, apenas conta.
type GatewayHandler struct {
	forwarder    *Forwarder
	metrics      *GatewayMetrics
	orderURL     string
	inventoryURL string

	routedCounter metric.Int64Counter
}

// NewGatewayHandler cria uma nova instância de GatewayHandler
func NewGatewayHandler(forwarder *Forwarder, metrics *GatewayMetrics, orderURL, inventoryURL string) *GatewayHandler {
	meter := otel.Meter("api-gateway")
	routedCounter, err := meter.Int64Counter("gateway.routed.requests")
	if err != nil {
		log.Printf("Failed to create routed requests counter: %v", err)
	}

	return &GatewayHandler{
		forwarder:     forwarder,
		metrics:       metrics,
		orderURL:      orderURL,
		inventoryURL:  inventoryURL,
		routedCounter: routedCounter,
	}
}

// CreateOrder encaminha POST /api/orders para o serviço de pedidos
func (h *GatewayHandler) CreateOrder(c *gin.Context) {
	h.proxy(c, serviceOrder, http.MethodPost, h.orderURL+"/orders")
}

// ListOrders encaminha GET /api/orders para o serviço de pedidos
func (h *GatewayHandler) ListOrders(c *gin.Context) {
	h.proxy(c, serviceOrder, http.MethodGet, h.orderURL+"/orders")
}

// ListInventory encaminha GET /api/inventory para o serviço de inventário
func (h *GatewayHandler) ListInventory(c *gin.Context) {
	h.proxy(c, serviceInventory, http.MethodGet, h.inventoryURL+"/inventory")
}

// UpdateInventoryItem encaminha PUT /api/inventory/:itemId
func (h *GatewayHandler) UpdateInventoryItem(c *gin.Context) {
	h.proxy(c, serviceInventory, http.MethodPut, h.inventoryURL+"/inventory/"+c.Param("itemId"))
}

// proxy repassa o corpo da requisição ao downstream e devolve status e corpo
// recebidos sem alteração. Falha de transporte vira um 500 uniforme
// "<Service> service unavailable", sem vazar o detalhe do downstream.
func (h *GatewayHandler) proxy(c *gin.Context, service, method, url string) {
	h.metrics.RecordRouted(service)
	if h.routedCounter != nil {
		h.routedCounter.Add(c.Request.Context(), 1, metric.WithAttributes(attribute.String("service", service)))
	}

	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read request body"})
			return
		}
	}

	resp, err := h.forwarder.Forward(c.Request.Context(), method, url, body, c.ContentType())
	if err != nil {
		h.metrics.RecordError()
		log.Printf("❌ [%s] %s %s failed: %v", service, method, url, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": unavailableMessage(service)})
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}

func unavailableMessage(service string) string {
	if service == serviceInventory {
		return "Inventory service unavailable"
	}
	return "Order service unavailable"
}

// HealthCheck verifica a saúde do gateway
func (h *GatewayHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

// RequestID garante um X-Request-Id em toda requisição que passa pelo gateway
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.New().String()
			c.Request.Header.Set("X-Request-Id", reqID)
		}
		c.Header("X-Request-Id", reqID)
		c.Next()
	}
}
