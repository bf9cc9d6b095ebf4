package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ledger"

const (
	OutcomeSuccess             = "success"
	OutcomeInvalidAmount       = "invalid_amount"
	OutcomeInsufficientBalance = "insufficient_balance"
	OutcomeSameAccount         = "same_account"
	OutcomeAccountNotFound     = "account_not_found"
	OutcomeInvalidInput        = "invalid_input"
	OutcomeError               = "error"
)

type Metrics struct {
	// TransfersTotal counts transfer attempts by outcome.
	TransfersTotal *prometheus.CounterVec
	// TransferDuration covers account resolution and the locked section.
	TransferDuration prometheus.Histogram
	// NotificationFailures counts failed notifications by party (source, destination).
	NotificationFailures *prometheus.CounterVec
	AccountsCreated      prometheus.Counter
	HTTPRequestDuration  *prometheus.HistogramVec
}

// NewMetrics registers the service collectors on reg. Each registry may hold
// only one Metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		TransfersTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transfers_total",
				Help:      "Total number of transfer attempts by outcome",
			},
			[]string{"outcome"},
		),
		TransferDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transfer_duration_seconds",
				Help:      "Transfer processing duration in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		NotificationFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_failed_total",
				Help:      "Total number of failed transfer notifications by party",
			},
			[]string{"party"},
		),
		AccountsCreated: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_created_total",
				Help:      "Total number of accounts created",
			},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path", "status"},
		),
	}
}
