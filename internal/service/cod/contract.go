//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cod_test
package cod

import (
	"context"
	"time"

	"settlement/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, entryModify entities.CODEntryModify) (*entities.CODLedgerEntry, error)
	Outstanding(ctx context.Context, riderID int64) (*entities.CODOutstanding, error)
	MarkPaid(ctx context.Context, riderID int64, upto, paidAt time.Time) (*entities.CODSettlement, error)
	ListPendingSummaries(ctx context.Context) ([]entities.CODOutstanding, error)
	UpsertProfileStatus(ctx context.Context, riderID int64, status entities.RiderSettlementStatus, debtSince *time.Time) (*entities.RiderProfile, error)
}

type WalletRepository interface {
	SettleRiderCash(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error)
}

type ConfigSource interface {
	Snapshot() entities.SettlementConfig
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
