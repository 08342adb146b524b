package checkout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CheckoutOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_outcomes_total",
			Help: "Checkout sessions by outcome",
		},
		[]string{"outcome"},
	)

	ReconciliationHazardsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_reconciliation_hazards_total",
			Help: "Payments that succeeded while the order could not be saved",
		},
	)
)
