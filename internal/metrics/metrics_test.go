package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/investledger/internal/domain"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RequestSubmitted(domain.KindDeposit)
	m.RequestSubmitted(domain.KindDeposit)
	m.RequestDecided(domain.KindWithdrawal, domain.DecisionReject)
	m.OperationFailed("decide", domain.ErrAlreadyDecided)
	m.RequestExpired()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submitted.WithLabelValues("deposit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("withdrawal", "reject")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("decide", "already_decided")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.expired))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ledger_requests_submitted_total")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RequestSubmitted(domain.KindDeposit)
		m.RequestDecided(domain.KindDeposit, domain.DecisionApprove)
		m.OperationFailed("submit", domain.ErrInvalidAmount)
		m.RequestExpired()
	})
}

func TestReason(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{domain.ErrInvalidAmount, "invalid_amount"},
		{fmt.Errorf("submit: %w", domain.ErrInsufficientFunds), "insufficient_funds"},
		{domain.ErrNotFound, "not_found"},
		{domain.ErrAlreadyDecided, "already_decided"},
		{fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, fmt.Errorf("timeout")), "storage_unavailable"},
		{domain.ErrInvalidKind, "invalid_input"},
		{fmt.Errorf("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reason(tt.err))
		})
	}
}
