package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InventoryMetrics agrega os contadores do serviço de inventário.
// Os gauges derivados (valor total, low/out-of-stock, quantidade por item)
// são recalculados a partir do repositório em cada scrape.
type InventoryMetrics struct {
	registry *prometheus.Registry

	checksTotal  prometheus.Counter
	updatesTotal prometheus.Counter
}

// NewInventoryMetrics cria o registro Prometheus do serviço de inventário
func NewInventoryMetrics(repository InventoryRepository) *InventoryMetrics {
	m := &InventoryMetrics{
		registry: prometheus.NewRegistry(),
		checksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_checks_total",
			Help: "Total number of inventory checks",
		}),
		updatesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_updates_total",
			Help: "Total number of inventory updates",
		}),
	}

	up := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_service_up",
		Help: "Inventory service status",
	})
	up.Set(1)

	m.registry.MustRegister(
		m.checksTotal,
		m.updatesTotal,
		up,
		&inventoryCollector{repository: repository},
	)
	return m
}

// RecordCheck registra uma consulta de inventário
func (m *InventoryMetrics) RecordCheck() {
	m.checksTotal.Inc()
}

// RecordUpdate registra uma mutação de inventário (update ou reserva)
func (m *InventoryMetrics) RecordUpdate() {
	m.updatesTotal.Inc()
}

// Handler expõe o snapshot de métricas no formato de texto Prometheus
func (m *InventoryMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// inventoryCollector deriva os gauges do estado atual do repositório a cada
// Collect, sem cache entre scrapes.
type inventoryCollector struct {
	repository InventoryRepository
}

var (
	totalValueDesc = prometheus.NewDesc(
		"inventory_total_value",
		"Total value of all inventory",
		nil, nil,
	)
	lowStockDesc = prometheus.NewDesc(
		"inventory_low_stock_alerts",
		"Number of items with low stock",
		nil, nil,
	)
	outOfStockDesc = prometheus.NewDesc(
		"inventory_out_of_stock",
		"Number of items out of stock",
		nil, nil,
	)
	itemQuantityDesc = prometheus.NewDesc(
		"inventory_item_quantity",
		"Current quantity of each inventory item",
		[]string{"item", "id"},
		nil,
	)
	itemReservedDesc = prometheus.NewDesc(
		"inventory_item_reserved",
		"Current reserved units of each inventory item",
		[]string{"item", "id"},
		nil,
	)
)

func (c *inventoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- totalValueDesc
	ch <- lowStockDesc
	ch <- outOfStockDesc
	ch <- itemQuantityDesc
	ch <- itemReservedDesc
}

func (c *inventoryCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	stats := c.repository.Stats(ctx)
	ch <- prometheus.MustNewConstMetric(totalValueDesc, prometheus.GaugeValue, stats.TotalValue)
	ch <- prometheus.MustNewConstMetric(lowStockDesc, prometheus.GaugeValue, float64(stats.LowStock))
	ch <- prometheus.MustNewConstMetric(outOfStockDesc, prometheus.GaugeValue, float64(stats.OutOfStock))

	for _, item := range c.repository.ListItems(ctx) {
		id := strconv.Itoa(item.ID)
		ch <- prometheus.MustNewConstMetric(itemQuantityDesc, prometheus.GaugeValue, float64(item.Quantity), item.Name, id)
		ch <- prometheus.MustNewConstMetric(itemReservedDesc, prometheus.GaugeValue, float64(item.Reserved), item.Name, id)
	}
}
