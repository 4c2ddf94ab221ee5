package prices

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var fetchFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "accountant",
		Name:      "price_fetch_failures_total",
		Help:      "Number of failed price source requests.",
	},
	[]string{"quote"},
)
