package cod_overdue

import (
	"context"
	"time"

	"settlement/pkg/logger"
)

type Service interface {
	SweepOverdue(ctx context.Context) (int64, error)
}

type CODOverdueSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCODOverdueSweep(log logger.Logger, service Service, interval time.Duration) *CODOverdueSweep {
	return &CODOverdueSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CODOverdueSweep) TTL() time.Duration {
	return c.interval
}

func (c *CODOverdueSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	flagged, err := c.service.SweepOverdue(ctxWithTimeout)

	if flagged > 0 {
		c.log.With(
			logger.NewField("flagged_riders", flagged),
		).Info("cod overdue sweep")
	}

	return err
}

func (c *CODOverdueSweep) Info() string {
	return "cod overdue sweep"
}
