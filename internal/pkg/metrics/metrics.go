// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orderhub"

type Metrics struct {
	CreditOperations  *prometheus.CounterVec
	CreditAmount      *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec
	Notifications     *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPLatencyMS     *prometheus.HistogramVec

	CreditDiscrepancies prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CreditOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger reserve/release attempts by outcome.",
		}, []string{"operation", "outcome"}),
		CreditAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "amount_total",
			Help:      "Sum of successfully reserved or released credit.",
		}, []string{"operation"}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Committed order status transitions.",
		}, []string{"from", "to"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Status change notifications by sink and outcome.",
		}, []string{"sink", "outcome"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPLatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route"}),
		CreditDiscrepancies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "credit_discrepancies",
			Help:      "Partners whose credit_used disagreed with their orders on the last reconciliation.",
		}),
	}

	reg.MustRegister(
		m.CreditOperations,
		m.CreditAmount,
		m.StatusTransitions,
		m.Notifications,
		m.HTTPRequests,
		m.HTTPLatencyMS,
		m.CreditDiscrepancies,
	)
	return m
}

// CreditOperation counts one ledger call. amount is added to the running sum only on success.
func (m *Metrics) CreditOperation(operation, outcome string, amount float64) {
	m.CreditOperations.WithLabelValues(operation, outcome).Inc()
	if outcome == OutcomeOK {
		m.CreditAmount.WithLabelValues(operation).Add(amount)
	}
}

func (m *Metrics) StatusTransition(from, to string) {
	m.StatusTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) Notification(sink, outcome string) {
	m.Notifications.WithLabelValues(sink, outcome).Inc()
}

func (m *Metrics) HTTPRequest(method, route, status string, latencyMS float64) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPLatencyMS.WithLabelValues(method, route).Observe(latencyMS)
}

func (m *Metrics) SetCreditDiscrepancies(n int) {
	m.CreditDiscrepancies.Set(float64(n))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
