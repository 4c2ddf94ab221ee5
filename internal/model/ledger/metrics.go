package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "accountant",
		Subsystem: "ledger",
		Name:      "operations_total",
		Help:      "Ledger operations by kind and result.",
	},
	[]string{"operation", "result"},
)

func observeOperation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	operationsTotal.WithLabelValues(op, result).Inc()
}
