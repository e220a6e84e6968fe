package cod

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"settlement/internal/entities"
)

// COD ведет учет наличных, собранных курьерами на доставках, и
// settlement-статус курьера по накопленному долгу перед платформой.
type COD struct {
	repository            Repository
	walletRepository      WalletRepository
	transactionRepository TransactionRepository
	configSource          ConfigSource
	txManager             TxManager
}

func New(
	repository Repository,
	walletRepository WalletRepository,
	transactionRepository TransactionRepository,
	configSource ConfigSource,
	txManager TxManager,
) *COD {
	return &COD{
		repository:            repository,
		walletRepository:      walletRepository,
		transactionRepository: transactionRepository,
		configSource:          configSource,
		txManager:             txManager,
	}
}

// Record пишет запись о собранных наличных. Вызывается из settlement
// в его транзакции.
func (c *COD) Record(ctx context.Context, entryModify entities.CODEntryModify) error {
	if entryModify.RiderID == nil || *entryModify.RiderID <= 0 {
		return ErrInvalidRiderID
	}

	_, err := c.repository.Create(ctx, entryModify)
	if err != nil {
		return fmt.Errorf("create cod entry: %w", err)
	}

	return nil
}

// Outstanding — текущий долг курьера и его settlement-статус,
// выведенный из порогов конфига.
func (c *COD) Outstanding(ctx context.Context, riderID int64) (*entities.CODOutstanding, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	outstanding, err := c.repository.Outstanding(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get cod outstanding: %w", err)
	}

	outstanding.SettlementStatus = c.deriveStatus(outstanding, time.Now().UTC())
	return outstanding, nil
}

// MarkPaid закрывает pending-записи курьера по дату upto включительно:
// наличные считаются внесенными в кассу, статус возвращается в active.
// Без upto закрываются все pending-записи.
func (c *COD) MarkPaid(ctx context.Context, riderID int64, upto *time.Time) (*entities.CODSettlement, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	paidAt := time.Now().UTC()
	boundary := paidAt
	if upto != nil {
		boundary = *upto
	}

	var result *entities.CODSettlement
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		settlement, err := c.repository.MarkPaid(ctx, riderID, boundary, paidAt)
		if err != nil {
			return fmt.Errorf("mark cod entries paid: %w", err)
		}

		if settlement.EntriesPaid == 0 {
			return ErrNoPendingEntries
		}

		riderWallet, err := c.walletRepository.SettleRiderCash(ctx, riderID, settlement.CollectedPaid)
		if err != nil {
			return fmt.Errorf("settle rider cash: %w", err)
		}

		_, err = c.transactionRepository.Append(ctx, entities.TransactionModify{
			EntityType:   entities.EntityRider,
			EntityID:     riderID,
			Type:         entities.TransactionCashDeposit,
			Amount:       settlement.AmountDeposited,
			BalanceAfter: riderWallet.CashCollected,
		})
		if err != nil {
			return fmt.Errorf("append cash deposit transaction: %w", err)
		}

		_, err = c.repository.UpsertProfileStatus(ctx, riderID, entities.SettlementActive, nil)
		if err != nil {
			return fmt.Errorf("reset rider settlement status: %w", err)
		}

		result = settlement
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SweepOverdue пересчитывает settlement-статусы всех должников.
// Возвращает число курьеров, переведенных не в active.
func (c *COD) SweepOverdue(ctx context.Context) (int64, error) {
	summaries, err := c.repository.ListPendingSummaries(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending cod summaries: %w", err)
	}

	now := time.Now().UTC()

	var flagged int64
	for i := range summaries {
		status := c.deriveStatus(&summaries[i], now)

		var debtSince *time.Time
		if status != entities.SettlementActive && summaries[i].OldestPendingAt != nil {
			debtSince = pointer.ToTime(*summaries[i].OldestPendingAt)
		}

		_, err = c.repository.UpsertProfileStatus(ctx, summaries[i].RiderID, status, debtSince)
		if err != nil {
			return flagged, fmt.Errorf("upsert rider %d settlement status: %w", summaries[i].RiderID, err)
		}

		if status != entities.SettlementActive {
			flagged++
		}
	}

	return flagged, nil
}

// deriveStatus сравнивает долг и его возраст с порогами конфига.
// Оба порога должны быть превышены одновременно.
func (c *COD) deriveStatus(outstanding *entities.CODOutstanding, now time.Time) entities.RiderSettlementStatus {
	if outstanding.PendingEntries == 0 || outstanding.OldestPendingAt == nil {
		return entities.SettlementActive
	}

	cfg := c.configSource.Snapshot()
	debtDays := int(now.Sub(*outstanding.OldestPendingAt).Hours() / 24)

	if outstanding.Amount > cfg.CODBlockedAmount && debtDays >= cfg.CODBlockedDays {
		return entities.SettlementBlocked
	}
	if outstanding.Amount > cfg.CODOverdueAmount && debtDays >= cfg.CODOverdueDays {
		return entities.SettlementOverdue
	}
	return entities.SettlementActive
}
