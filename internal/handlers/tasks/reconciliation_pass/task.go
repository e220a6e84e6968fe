package reconciliation_pass

import (
	"context"
	"time"

	"settlement/internal/entities"
	"settlement/pkg/logger"
)

type Service interface {
	ReconcileAll(ctx context.Context) ([]entities.ReconciliationReport, error)
}

type ReconciliationPass struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewReconciliationPass(log logger.Logger, service Service, interval time.Duration) *ReconciliationPass {
	return &ReconciliationPass{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *ReconciliationPass) TTL() time.Duration {
	return r.interval
}

func (r *ReconciliationPass) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	reports, err := r.service.ReconcileAll(ctxWithTimeout)

	var drifted int
	for i := range reports {
		if reports[i].Delta != 0 {
			drifted++
			delta := reports[i].Delta
			if delta < 0 {
				delta = -delta
			}
			driftCorrected.WithLabelValues(reports[i].EntityType.String()).Add(float64(delta))
			r.log.With(
				logger.NewField("entity_type", reports[i].EntityType.String()),
				logger.NewField("entity_id", reports[i].EntityID),
				logger.NewField("delta", reports[i].Delta),
			).Warn("reconciliation drift corrected")
		}
	}

	if len(reports) > 0 {
		r.log.With(
			logger.NewField("reconciled", len(reports)),
			logger.NewField("drifted", drifted),
		).Info("reconciliation pass")
	}

	return err
}

func (r *ReconciliationPass) Info() string {
	return "reconciliation pass"
}
