package reconciliation_pass

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var driftCorrected = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "settlement_reconciliation_drift_total",
		Help: "Absolute drift corrected by reconciliation passes, by entity type.",
	},
	[]string{"entity_type"},
)
