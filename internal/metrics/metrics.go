package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GlebRadaev/investledger/internal/domain"
)

const namespace = "ledger"

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	submitted *prometheus.CounterVec
	decisions *prometheus.CounterVec
	failures  *prometheus.CounterVec
	expired   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		submitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_submitted_total",
				Help:      "Deposit and withdrawal requests accepted, partitioned by kind.",
			},
			[]string{"kind"},
		),
		decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decisions_total",
				Help:      "Committed decisions, partitioned by request kind and decision.",
			},
			[]string{"kind", "decision"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operation_failures_total",
				Help:      "Failed ledger operations, partitioned by operation and reason.",
			},
			[]string{"operation", "reason"},
		),
		expired: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expired_requests_total",
				Help:      "Pending requests rejected by the expiry sweeper.",
			},
		),
	}
}

func (m *Metrics) RequestSubmitted(kind domain.Kind) {
	if m == nil {
		return
	}
	m.submitted.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) RequestDecided(kind domain.Kind, decision domain.Decision) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(string(kind), string(decision)).Inc()
}

func (m *Metrics) OperationFailed(operation string, err error) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(operation, Reason(err)).Inc()
}

func (m *Metrics) RequestExpired() {
	if m == nil {
		return
	}
	m.expired.Inc()
}

// Reason maps an error onto a bounded label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadyDecided):
		return "already_decided"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "account_disabled"
	case errors.Is(err, domain.ErrIdempotencyMismatch):
		return "idempotency_mismatch"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return "storage_unavailable"
	case domain.IsBusiness(err):
		return "invalid_input"
	default:
		return "internal"
	}
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
