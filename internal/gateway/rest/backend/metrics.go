package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_gateway_request_duration_seconds",
			Help:    "Duration of requests to the storefront backend",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "outcome"},
	)

	GatewayShapeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_gateway_shape_errors_total",
			Help: "Successful backend responses that were not in the expected shape",
		},
		[]string{"service", "method"},
	)
)
