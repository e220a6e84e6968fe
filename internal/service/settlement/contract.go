//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"
	"time"

	"settlement/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	MarkSettled(ctx context.Context, orderID string, upd entities.OrderSettlementUpdate) error
	MarkCancelled(ctx context.Context, orderID string, cancelledAt time.Time) (*entities.Order, error)
}

type WalletRepository interface {
	CreditRider(ctx context.Context, riderID int64, credit entities.RiderWalletCredit) (*entities.RiderWallet, error)
	CreditRestaurant(ctx context.Context, restaurantID, earning, commission int64) (*entities.RestaurantWallet, error)
	ReleaseRestaurantHold(ctx context.Context, restaurantID, amount int64) (*entities.RestaurantWallet, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error)
	AppendWithRunningBalance(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error)
}

type CODService interface {
	Record(ctx context.Context, entryModify entities.CODEntryModify) error
}

type BonusService interface {
	Accrue(ctx context.Context, riderID int64, deliveredAt time.Time) error
}

type PayoutFactory interface {
	RiderEarning(distanceKm float64, cfg entities.SettlementConfig) int64
	DeliveryFee(distanceKm float64, cfg entities.SettlementConfig) int64
}

type ConfigSource interface {
	Snapshot() entities.SettlementConfig
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
