package order_status_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsProcessed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "settlement_order_events_total",
		Help: "Processed order.status.changed events by status and outcome.",
	},
	[]string{"status", "outcome"},
)
