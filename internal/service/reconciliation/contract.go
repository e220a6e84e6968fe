//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reconciliation_test
package reconciliation

import (
	"context"

	"settlement/internal/entities"
)

type OrderRepository interface {
	ListRiderSettledOrders(ctx context.Context, riderID int64) ([]entities.RiderSettledOrder, error)
	SumRestaurantEarnings(ctx context.Context, restaurantID int64) (earnings, commission int64, err error)
	ListSettledRiderIDs(ctx context.Context) ([]int64, error)
	ListSettledRestaurantIDs(ctx context.Context) ([]int64, error)
}

type WalletRepository interface {
	GetRider(ctx context.Context, riderID int64) (*entities.RiderWallet, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (*entities.RestaurantWallet, error)
	OverwriteRider(ctx context.Context, riderID int64, totals entities.RiderWalletTotals) (*entities.RiderWallet, error)
	OverwriteRestaurant(ctx context.Context, restaurantID int64, totals entities.RestaurantWalletTotals) (*entities.RestaurantWallet, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error)
	SumByType(ctx context.Context, entityType entities.TransactionEntityType, entityID int64, transactionType entities.TransactionType) (int64, error)
}

type CODRepository interface {
	Outstanding(ctx context.Context, riderID int64) (*entities.CODOutstanding, error)
}

type PayoutFactory interface {
	RiderEarning(distanceKm float64, cfg entities.SettlementConfig) int64
}

type ConfigSource interface {
	Snapshot() entities.SettlementConfig
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
