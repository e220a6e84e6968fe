//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cod_outstanding_get_test
package cod_outstanding_get

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
	Outstanding(ctx context.Context, riderID int64) (*entities.CODOutstanding, error)
}
