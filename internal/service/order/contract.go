//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"settlement/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type SettlementService interface {
	Settle(ctx context.Context, orderID string) (*entities.Order, error)
	Cancel(ctx context.Context, orderID string) (*entities.Order, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
