package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ledger's Prometheus collectors.
type Metrics struct {
	AccountsCreated    prometheus.Counter
	DepositsTotal      prometheus.Counter
	WithdrawalsTotal   prometheus.Counter
	TransfersCompleted prometheus.Counter
	TransfersFailed    prometheus.Counter
	OperationErrors    *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
	TransferAmount     prometheus.Histogram
}

// New creates and registers all ledger metrics.
func New() *Metrics {
	return &Metrics{
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		DepositsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_deposits_total",
			Help: "Total number of successful deposits",
		}),
		WithdrawalsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_withdrawals_total",
			Help: "Total number of successful withdrawals",
		}),
		TransfersCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transfers_completed_total",
			Help: "Total number of completed transfers",
		}),
		TransfersFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transfers_failed_total",
			Help: "Total number of transfers that failed after validation",
		}),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operation_errors_total",
				Help: "Total ledger operation errors by operation",
			},
			[]string{"operation"},
		),
		OperationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_seconds",
				Help:    "Duration of ledger operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
	}
}
