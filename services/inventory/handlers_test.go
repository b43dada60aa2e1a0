package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
)

func newTestServer(seed []Item) (*gin.Engine, *InventoryMetrics) {
	gin.SetMode(gin.TestMode)

	repo := NewMemoryInventoryRepository(seed)
	metrics := NewInventoryMetrics(repo)
	uc := NewInventoryUseCase(repo, metrics)
	handler := NewInventoryHandler(uc, otel.Tracer("test"))

	return newRouter(handler, metrics), metrics
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListInventory(t *testing.T) {
	r, metrics := newTestServer(SeedItems())

	w := doJSON(r, http.MethodGet, "/inventory", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []Item
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 5)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.checksTotal))
}

func TestGetInventoryItem_NotFound(t *testing.T) {
	r, _ := newTestServer(SeedItems())

	w := doJSON(r, http.MethodGet, "/inventory/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Item not found"}`, w.Body.String())
}

func TestReserve_Insufficient(t *testing.T) {
	r, _ := newTestServer([]Item{{ID: 1, Name: "Laptop", Quantity: 5, Price: 999.99}})

	w := doJSON(r, http.MethodPost, "/inventory/1/reserve", gin.H{"quantity": 10})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Insufficient inventory"}`, w.Body.String())

	// Item must be byte-for-byte unchanged
	got := doJSON(r, http.MethodGet, "/inventory/1", nil)
	var item Item
	assert.NoError(t, json.Unmarshal(got.Body.Bytes(), &item))
	assert.Equal(t, Item{ID: 1, Name: "Laptop", Quantity: 5, Price: 999.99, Reserved: 0}, item)
}

func TestReserve_DrainsStock(t *testing.T) {
	r, _ := newTestServer([]Item{{ID: 1, Name: "Laptop", Quantity: 5, Price: 999.99, Reserved: 1}})

	w := doJSON(r, http.MethodPost, "/inventory/1/reserve", gin.H{"quantity": 5})

	assert.Equal(t, http.StatusOK, w.Code)

	var item Item
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, 6, item.Reserved)
}

func TestReserve_UnknownItem(t *testing.T) {
	r, _ := newTestServer(SeedItems())

	w := doJSON(r, http.MethodPost, "/inventory/42/reserve", gin.H{"quantity": 1})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Item not found"}`, w.Body.String())
}

func TestUpdateItem_OnlyProvidedFields(t *testing.T) {
	r, metrics := newTestServer([]Item{{ID: 1, Name: "Laptop", Quantity: 50, Price: 999.99, Reserved: 3}})

	w := doJSON(r, http.MethodPut, "/inventory/1", gin.H{"quantity": 10})

	assert.Equal(t, http.StatusOK, w.Code)

	var item Item
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, 3, item.Reserved)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.updatesTotal))
}

func TestUpdateItem_NotFoundHTTP(t *testing.T) {
	r, _ := newTestServer(SeedItems())

	w := doJSON(r, http.MethodPut, "/inventory/99", gin.H{"quantity": 10})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Item not found"}`, w.Body.String())
}

func TestInventoryHealth(t *testing.T) {
	r, _ := newTestServer(SeedItems())

	w := doJSON(r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"inventory-service"}`, w.Body.String())
}

func TestInventoryMetrics_Exposition(t *testing.T) {
	r, _ := newTestServer([]Item{
		{ID: 1, Name: "Laptop", Quantity: 2, Price: 100},
		{ID: 2, Name: "Mouse", Quantity: 0, Price: 10},
	})

	doJSON(r, http.MethodPost, "/inventory/1/reserve", gin.H{"quantity": 1})

	w := doJSON(r, http.MethodGet, "/metrics", nil)
	body := w.Body.String()

	assert.Contains(t, body, "# TYPE inventory_total_value gauge")
	assert.Contains(t, body, "inventory_total_value 100")
	assert.Contains(t, body, "inventory_out_of_stock 1")
	assert.Contains(t, body, "inventory_low_stock_alerts 1")
	assert.Contains(t, body, "inventory_updates_total 1")
	assert.Contains(t, body, `inventory_item_quantity{id="1",item="Laptop"} 1`)
	assert.Contains(t, body, `inventory_item_reserved{id="1",item="Laptop"} 1`)
	assert.Contains(t, body, "inventory_service_up 1")
}

// Two scrapes with no intervening mutation must be identical.
func TestInventoryMetrics_IdempotentScrape(t *testing.T) {
	r, _ := newTestServer(SeedItems())

	doJSON(r, http.MethodGet, "/inventory", nil)

	first := doJSON(r, http.MethodGet, "/metrics", nil)
	second := doJSON(r, http.MethodGet, "/metrics", nil)

	assert.Equal(t, first.Body.String(), second.Body.String())
}
