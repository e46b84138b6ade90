package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orderhub/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CreditOperation(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.CreditOperation("reserve", metrics.OutcomeOK, 3000)
	m.CreditOperation("reserve", metrics.OutcomeOK, 1500.5)
	m.CreditOperation("reserve", "insufficient_credit", 8000)

	assert.InDelta(t, 2, testutil.ToFloat64(m.CreditOperations.WithLabelValues("reserve", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CreditOperations.WithLabelValues("reserve", "insufficient_credit")), 0)
	assert.InDelta(t, 4500.5, testutil.ToFloat64(m.CreditAmount.WithLabelValues("reserve")), 0.001)
}

func TestMetrics_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.StatusTransition("APPROVED", "CANCELED")

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `orderhub_orders_status_transitions_total{from="APPROVED",to="CANCELED"} 1`)
}

func TestNew_PanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	assert.Panics(t, func() { metrics.New(reg) })
}

func TestMetrics_SetCreditDiscrepancies(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.SetCreditDiscrepancies(3)
	m.SetCreditDiscrepancies(1)

	assert.InDelta(t, 1, testutil.ToFloat64(m.CreditDiscrepancies), 0)
}
