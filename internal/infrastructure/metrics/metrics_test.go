package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistersLedgerMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	m.AccountsCreated.Inc()
	m.TransfersCompleted.Inc()
	m.OperationErrors.WithLabelValues("deposit").Inc()
	m.OperationDuration.WithLabelValues("deposit").Observe(0.01)
	m.TransferAmount.Observe(50)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}

	for _, name := range []string{
		"ledger_accounts_created_total",
		"ledger_deposits_total",
		"ledger_withdrawals_total",
		"ledger_transfers_completed_total",
		"ledger_transfers_failed_total",
		"ledger_operation_errors_total",
		"ledger_operation_duration_seconds",
		"ledger_transfer_amount",
	} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}
