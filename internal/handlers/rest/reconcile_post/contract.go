//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reconcile_post_test
package reconcile_post

import (
	"context"

	"settlement/internal/entities"
	"settlement/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Reconcile(ctx context.Context, entityType entities.TransactionEntityType, entityID int64) (*entities.ReconciliationReport, error)
	ReconcileAll(ctx context.Context) ([]entities.ReconciliationReport, error)
}
