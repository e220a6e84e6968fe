//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cod_markpaid_post_test
package cod_markpaid_post

import (
	"context"
	"time"

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
	MarkPaid(ctx context.Context, riderID int64, upto *time.Time) (*entities.CODSettlement, error)
}
