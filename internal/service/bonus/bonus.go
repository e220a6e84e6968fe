package bonus

import (
	"context"
	"fmt"
	"time"

	"settlement/internal/entities"
)

// Bonus начисляет дневной бонус курьеру за достижение целевого числа
// доставок. Вызывается из settlement и работает в его транзакции.
type Bonus struct {
	repository            Repository
	walletRepository      WalletRepository
	transactionRepository TransactionRepository
	configSource          ConfigSource
}

func New(
	repository Repository,
	walletRepository WalletRepository,
	transactionRepository TransactionRepository,
	configSource ConfigSource,
) *Bonus {
	return &Bonus{
		repository:            repository,
		walletRepository:      walletRepository,
		transactionRepository: transactionRepository,
		configSource:          configSource,
	}
}

// Accrue учитывает одну доставку в дневном счетчике и начисляет бонус,
// когда счетчик достигает цели. CAS на is_bonus_achieved гарантирует
// ровно одно начисление на пару (курьер, день).
func (b *Bonus) Accrue(ctx context.Context, riderID int64, deliveredAt time.Time) error {
	if riderID <= 0 {
		return ErrInvalidRiderID
	}

	cfg := b.configSource.Snapshot()
	day := deliveredAt.UTC().Truncate(24 * time.Hour)

	record, err := b.repository.IncrementDaily(ctx, riderID, day, cfg.BonusTargetDeliveries, cfg.BonusAmount)
	if err != nil {
		return fmt.Errorf("increment daily deliveries: %w", err)
	}

	if record.DailyDeliveryCount < record.TargetDeliveries || record.IsBonusAchieved {
		return nil
	}

	achieved, err := b.repository.MarkAchieved(ctx, riderID, day, deliveredAt.UTC())
	if err != nil {
		return fmt.Errorf("mark bonus achieved: %w", err)
	}
	if !achieved {
		// бонус уже начислен конкурентным settlement
		return nil
	}

	riderWallet, err := b.walletRepository.CreditRiderBonus(ctx, riderID, record.BonusAmount)
	if err != nil {
		return fmt.Errorf("credit rider bonus: %w", err)
	}

	_, err = b.transactionRepository.Append(ctx, entities.TransactionModify{
		EntityType:   entities.EntityRider,
		EntityID:     riderID,
		Type:         entities.TransactionBonus,
		Amount:       record.BonusAmount,
		BalanceAfter: riderWallet.AvailableWithdraw,
	})
	if err != nil {
		return fmt.Errorf("append bonus transaction: %w", err)
	}

	return nil
}
