package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// durationWindowSize limita a janela de durações recentes usada para a
// média; a amostra mais antiga é descartada primeiro.
const durationWindowSize = 1000

// GatewayMetrics agrega os contadores do gateway. O gateway não guarda
// estado de negócio; apenas estes contadores, seguros sob incremento
// concorrente.
type GatewayMetrics struct {
	registry *prometheus.Registry

	requestsTotal     prometheus.Counter
	requestsByService *prometheus.CounterVec
	errorsTotal       prometheus.Counter

	mu        sync.Mutex
	durations []float64 // ms, bounded ring
}

// NewGatewayMetrics cria o registro Prometheus do gateway
func NewGatewayMetrics() *GatewayMetrics {
	m := &GatewayMetrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of requests to the API gateway",
		}),
		requestsByService: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_requests_by_service",
			Help: "Total requests routed to each service",
		}, []string{"service"}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gateway_errors_total",
			Help: "Total number of gateway errors",
		}),
	}

	// Both series exposed from the first scrape on
	m.requestsByService.WithLabelValues("order")
	m.requestsByService.WithLabelValues("inventory")

	avgDuration := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "gateway_request_duration_ms",
		Help: "Average request duration in milliseconds",
	}, m.averageDuration)

	up := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gateway_up",
		Help: "Gateway service status",
	})
	up.Set(1)

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestsByService,
		m.errorsTotal,
		avgDuration,
		up,
	)
	return m
}

// RecordRouted registra uma requisição encaminhada para um serviço
func (m *GatewayMetrics) RecordRouted(service string) {
	m.requestsByService.WithLabelValues(service).Inc()
}

// RecordError registra uma falha de downstream
func (m *GatewayMetrics) RecordError() {
	m.errorsTotal.Inc()
}

// RecordDuration adiciona uma duração à janela limitada
func (m *GatewayMetrics) RecordDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.durations = append(m.durations, float64(d.Milliseconds()))
	if len(m.durations) > durationWindowSize {
		m.durations = m.durations[1:]
	}
}

func (m *GatewayMetrics) averageDuration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.durations) == 0 {
		return 0
	}
	var sum float64
	for _, d := range m.durations {
		sum += d
	}
	return sum / float64(len(m.durations))
}

// Handler expõe o snapshot de métricas no formato de texto Prometheus
func (m *GatewayMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RequestMetrics conta cada requisição e mede sua duração ao final
func RequestMetrics(m *GatewayMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestsTotal.Inc()

		c.Next()

		m.RecordDuration(time.Since(start))
	}
}
