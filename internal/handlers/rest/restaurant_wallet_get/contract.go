//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_wallet_get_test
package restaurant_wallet_get

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
	GetRestaurantWallet(ctx context.Context, restaurantID int64) (*entities.RestaurantWallet, error)
}
