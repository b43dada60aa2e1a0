package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderMetrics agrega os contadores do serviço de pedidos.
// Contadores só crescem e são mutados exclusivamente pelos pontos de
// incremento do use case/handler; os gauges derivados (distribuição por
// status, tempo médio) são recalculados a cada scrape a partir do estado
// autoritativo, nunca cacheados.
type OrderMetrics struct {
	registry *prometheus.Registry

	ordersTotal     prometheus.Counter
	ordersProcessed prometheus.Counter
	ordersFailed    prometheus.Counter
	ordersRevenue   prometheus.Counter

	mu                sync.Mutex
	processingTimeSum float64 // ms
	processedCount    int
}

// NewOrderMetrics cria o registro Prometheus do serviço de pedidos
func NewOrderMetrics(repository Repository) *OrderMetrics {
	m := &OrderMetrics{
		registry: prometheus.NewRegistry(),
		ordersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of orders created",
		}),
		ordersProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_processed_total",
			Help: "Total number of orders successfully processed",
		}),
		ordersFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_failed_total",
			Help: "Total number of failed orders",
		}),
		ordersRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_revenue_total",
			Help: "Total revenue from completed orders",
		}),
	}

	processingTime := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "orders_processing_time_ms",
		Help: "Average order processing time in milliseconds",
	}, m.averageProcessingTime)

	up := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "order_service_up",
		Help: "Order service status",
	})
	up.Set(1)

	m.registry.MustRegister(
		m.ordersTotal,
		m.ordersProcessed,
		m.ordersFailed,
		m.ordersRevenue,
		processingTime,
		up,
		&orderStatusCollector{repository: repository},
	)
	return m
}

// RecordCreation registra a criação de um pedido
func (m *OrderMetrics) RecordCreation() {
	m.ordersTotal.Inc()
}

// RecordFailure registra uma falha de validação na criação
func (m *OrderMetrics) RecordFailure() {
	m.ordersFailed.Inc()
}

// RecordCompletion registra a conclusão de um pedido: contador de
// processados, receita acumulada e tempo decorrido (criação -> conclusão)
func (m *OrderMetrics) RecordCompletion(totalAmount float64, elapsed time.Duration) {
	m.ordersProcessed.Inc()
	// totalAmount vem do cliente e não é validado além de presença;
	// Counter.Add entra em pânico com valores negativos.
	if totalAmount > 0 {
		m.ordersRevenue.Add(totalAmount)
	}

	m.mu.Lock()
	m.processingTimeSum += float64(elapsed.Milliseconds())
	m.processedCount++
	m.mu.Unlock()
}

func (m *OrderMetrics) averageProcessingTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.processedCount == 0 {
		return 0
	}
	return m.processingTimeSum / float64(m.processedCount)
}

// Handler expõe o snapshot de métricas no formato de texto Prometheus
func (m *OrderMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// orderStatusCollector deriva orders_by_status do repositório a cada
// Collect. Pedidos falhos nunca são armazenados, então a soma dos gauges
// sempre bate com a contagem de pedidos existentes.
type orderStatusCollector struct {
	repository Repository
}

var orderStatusDesc = prometheus.NewDesc(
	"orders_by_status",
	"Current orders by status",
	[]string{"status"},
	nil,
)

func (c *orderStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- orderStatusDesc
}

func (c *orderStatusCollector) Collect(ch chan<- prometheus.Metric) {
	counts := c.repository.CountByStatus(context.Background())
	for _, status := range []string{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusCompleted,
		OrderStatusFailed,
	} {
		ch <- prometheus.MustNewConstMetric(
			orderStatusDesc,
			prometheus.GaugeValue,
			float64(counts[status]),
			status,
		)
	}
}
