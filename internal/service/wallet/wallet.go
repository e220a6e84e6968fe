package wallet

import (
	"context"
	"fmt"

	"settlement/internal/entities"
)

// Wallet — чтение балансов и ручные денежные операции, не привязанные
// к расчету конкретного заказа: штрафы, выводы, выплаты ресторанам.
type Wallet struct {
	repository            Repository
	transactionRepository TransactionRepository
	txManager             TxManager
}

func New(
	repository Repository,
	transactionRepository TransactionRepository,
	txManager TxManager,
) *Wallet {
	return &Wallet{
		repository:            repository,
		transactionRepository: transactionRepository,
		txManager:             txManager,
	}
}

func (w *Wallet) GetRiderWallet(ctx context.Context, riderID int64) (*entities.RiderWallet, error) {
	if riderID <= 0 {
		return nil, ErrInvalidEntityID
	}

	riderWallet, err := w.repository.GetRider(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get rider wallet: %w", err)
	}

	return riderWallet, nil
}

func (w *Wallet) GetRestaurantWallet(ctx context.Context, restaurantID int64) (*entities.RestaurantWallet, error) {
	if restaurantID <= 0 {
		return nil, ErrInvalidEntityID
	}

	restaurantWallet, err := w.repository.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant wallet: %w", err)
	}

	return restaurantWallet, nil
}

func (w *Wallet) ListTransactions(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error) {
	transactions, err := w.transactionRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, nil
}

// ApplyPenalty списывает штраф с доступных средств курьера. Штраф не
// может загнать баланс в минус.
func (w *Wallet) ApplyPenalty(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error) {
	if riderID <= 0 {
		return nil, ErrInvalidEntityID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var riderWallet *entities.RiderWallet
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		riderWallet, err = w.repository.ApplyRiderPenalty(ctx, riderID, amount)
		if err != nil {
			return fmt.Errorf("apply rider penalty: %w", err)
		}

		_, err = w.transactionRepository.Append(ctx, entities.TransactionModify{
			EntityType:   entities.EntityRider,
			EntityID:     riderID,
			Type:         entities.TransactionPenalty,
			Amount:       -amount,
			BalanceAfter: riderWallet.AvailableWithdraw,
		})
		if err != nil {
			return fmt.Errorf("append penalty transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return riderWallet, nil
}

func (w *Wallet) Withdraw(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error) {
	if riderID <= 0 {
		return nil, ErrInvalidEntityID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var riderWallet *entities.RiderWallet
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		riderWallet, err = w.repository.WithdrawRider(ctx, riderID, amount)
		if err != nil {
			return fmt.Errorf("withdraw rider: %w", err)
		}

		_, err = w.transactionRepository.Append(ctx, entities.TransactionModify{
			EntityType:   entities.EntityRider,
			EntityID:     riderID,
			Type:         entities.TransactionPayout,
			Amount:       -amount,
			BalanceAfter: riderWallet.AvailableWithdraw,
		})
		if err != nil {
			return fmt.Errorf("append payout transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return riderWallet, nil
}

// RecordRestaurantPayout переводит средства ресторана из доступных в
// ожидающие выплату и пишет проводку в журнал.
func (w *Wallet) RecordRestaurantPayout(ctx context.Context, restaurantID, amount int64) (*entities.RestaurantWallet, error) {
	if restaurantID <= 0 {
		return nil, ErrInvalidEntityID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var restaurantWallet *entities.RestaurantWallet
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		restaurantWallet, err = w.repository.PayoutRestaurant(ctx, restaurantID, amount)
		if err != nil {
			return fmt.Errorf("payout restaurant: %w", err)
		}

		_, err = w.transactionRepository.Append(ctx, entities.TransactionModify{
			EntityType:   entities.EntityRestaurant,
			EntityID:     restaurantID,
			Type:         entities.TransactionPayout,
			Amount:       -amount,
			BalanceAfter: restaurantWallet.AvailableBalance,
		})
		if err != nil {
			return fmt.Errorf("append restaurant payout transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return restaurantWallet, nil
}
