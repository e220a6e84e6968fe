//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bonus_test
package bonus

import (
	"context"
	"time"

	"settlement/internal/entities"
)

type Repository interface {
	IncrementDaily(ctx context.Context, riderID int64, day time.Time, targetDeliveries, bonusAmount int64) (*entities.RiderBonusRecord, error)
	MarkAchieved(ctx context.Context, riderID int64, day, creditedAt time.Time) (bool, error)
}

type WalletRepository interface {
	CreditRiderBonus(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error)
}

type ConfigSource interface {
	Snapshot() entities.SettlementConfig
}
