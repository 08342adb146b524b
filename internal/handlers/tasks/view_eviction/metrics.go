package view_eviction

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OpenViews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_open_views",
			Help: "Number of dashboard view instances kept by the server",
		},
	)

	EvictedViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_evicted_views_total",
			Help: "Dashboard view instances closed after idling",
		},
	)
)
