package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"settlement/internal/entities"
	"settlement/internal/service/wallet"
)

const riderColumns = `
		rider_id, cash_collected, delivery_earnings, penalties, bonuses,
		available_withdraw, total_earnings, updated_at`

const restaurantColumns = `
		restaurant_id, available_balance, pending_payout, on_hold_amount,
		total_commission_collected, total_earnings, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreditRider применяет инкременты кошелька одним атомарным upsert.
// Кошелек создается лениво на первом settlement курьера.
func (r *Repository) CreditRider(ctx context.Context, riderID int64, credit entities.RiderWalletCredit) (*entities.RiderWallet, error) {
	query := `
		INSERT INTO rider_wallets (rider_id, cash_collected, delivery_earnings, available_withdraw, total_earnings, updated_at)
		VALUES ($1, $2, $3, $4, $3, NOW())
		ON CONFLICT (rider_id) DO UPDATE SET
			cash_collected     = rider_wallets.cash_collected + EXCLUDED.cash_collected,
			delivery_earnings  = rider_wallets.delivery_earnings + EXCLUDED.delivery_earnings,
			available_withdraw = rider_wallets.available_withdraw + EXCLUDED.available_withdraw,
			total_earnings     = rider_wallets.total_earnings + EXCLUDED.total_earnings,
			updated_at         = NOW()
		RETURNING ` + riderColumns

	walletDB, err := r.scanRider(r.querier.QueryRow(
		ctx,
		query,
		riderID,
		credit.CashCollected,
		credit.DeliveryEarnings,
		credit.AvailableWithdraw,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository credit rider error: %w", err)
	}

	return ToRiderDomain(walletDB), nil
}

func (r *Repository) CreditRiderBonus(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error) {
	query := `
		INSERT INTO rider_wallets (rider_id, bonuses, available_withdraw, total_earnings, updated_at)
		VALUES ($1, $2, $2, $2, NOW())
		ON CONFLICT (rider_id) DO UPDATE SET
			bonuses            = rider_wallets.bonuses + EXCLUDED.bonuses,
			available_withdraw = rider_wallets.available_withdraw + EXCLUDED.available_withdraw,
			total_earnings     = rider_wallets.total_earnings + EXCLUDED.total_earnings,
			updated_at         = NOW()
		RETURNING ` + riderColumns

	walletDB, err := r.scanRider(r.querier.QueryRow(ctx, query, riderID, amount))
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository credit rider bonus error: %w", err)
	}

	return ToRiderDomain(walletDB), nil
}

// ApplyRiderPenalty списывает штраф, только если на кошельке хватает
// доступных средств. Непрошедшее условие различается на ErrWalletNotFound
// и ErrNegativeBalance повторным чтением.
func (r *Repository) ApplyRiderPenalty(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error) {
	query := `
		UPDATE rider_wallets SET
			penalties          = penalties + $2,
			available_withdraw = available_withdraw - $2,
			total_earnings     = total_earnings - $2,
			updated_at         = NOW()
		WHERE rider_id = $1
		  AND available_withdraw >= $2
		RETURNING ` + riderColumns

	walletDB, err := r.scanRider(r.querier.QueryRow(ctx, query, riderID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetRider(ctx, riderID); getErr != nil {
				return nil, getErr
			}
			return nil, wallet.ErrNegativeBalance
		}
		return nil, fmt.Errorf("unexpected wallet repository apply rider penalty error: %w", err)
	}

	return ToRiderDomain(walletDB), nil
}

func (r *Repository) WithdrawRider(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error) {
	query := `
		UPDATE rider_wallets SET
			available_withdraw = available_withdraw - $2,
			updated_at         = NOW()
		WHERE rider_id = $1
		  AND available_withdraw >= $2
		RETURNING ` + riderColumns

	walletDB, err := r.scanRider(r.querier.QueryRow(ctx, query, riderID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetRider(ctx, riderID); getErr != nil {
				return nil, getErr
			}
			return nil, wallet.ErrNegativeBalance
		}
		return nil, fmt.Errorf("unexpected wallet repository withdraw rider error: %w", err)
	}

	return ToRiderDomain(walletDB), nil
}

// SettleRiderCash уменьшает счетчик наличных на руках после погашения
// COD-долга. GREATEST защищает от ухода в минус на повторной сверке.
func (r *Repository) SettleRiderCash(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error) {
	query := `
		UPDATE rider_wallets SET
			cash_collected = GREATEST(cash_collected - $2, 0),
			updated_at     = NOW()
		WHERE rider_id = $1
		RETURNING ` + riderColumns

	walletDB, err := r.scanRider(r.querier.QueryRow(ctx, query, riderID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository settle rider cash error: %w", err)
	}

	return ToRiderDomain(walletDB), nil
}

func (r *Repository) GetRider(ctx context.Context, riderID int64) (*entities.RiderWallet, error) {
	query := `SELECT ` + riderColumns + ` FROM rider_wallets WHERE rider_id = $1`

	walletDB, err := r.scanRider(r.querier.QueryRow(ctx, query, riderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository get rider error: %w", err)
	}

	return ToRiderDomain(walletDB), nil
}

// OverwriteRider перезаписывает кэш кошелька значениями, пересчитанными
// reconciliation с нуля по журналу и заказам.
func (r *Repository) OverwriteRider(ctx context.Context, riderID int64, totals entities.RiderWalletTotals) (*entities.RiderWallet, error) {
	query := `
		INSERT INTO rider_wallets (rider_id, cash_collected, delivery_earnings, penalties, bonuses, available_withdraw, total_earnings, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (rider_id) DO UPDATE SET
			cash_collected     = EXCLUDED.cash_collected,
			delivery_earnings  = EXCLUDED.delivery_earnings,
			penalties          = EXCLUDED.penalties,
			bonuses            = EXCLUDED.bonuses,
			available_withdraw = EXCLUDED.available_withdraw,
			total_earnings     = EXCLUDED.total_earnings,
			updated_at         = NOW()
		RETURNING ` + riderColumns

	walletDB, err := r.scanRider(r.querier.QueryRow(
		ctx,
		query,
		riderID,
		totals.CashCollected,
		totals.DeliveryEarnings,
		totals.Penalties,
		totals.Bonuses,
		totals.AvailableWithdraw,
		totals.TotalEarnings,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository overwrite rider error: %w", err)
	}

	return ToRiderDomain(walletDB), nil
}

func (r *Repository) CreditRestaurant(ctx context.Context, restaurantID, earning, commission int64) (*entities.RestaurantWallet, error) {
	query := `
		INSERT INTO restaurant_wallets (restaurant_id, available_balance, total_commission_collected, total_earnings, updated_at)
		VALUES ($1, $2, $3, $2, NOW())
		ON CONFLICT (restaurant_id) DO UPDATE SET
			available_balance          = restaurant_wallets.available_balance + EXCLUDED.available_balance,
			total_commission_collected = restaurant_wallets.total_commission_collected + EXCLUDED.total_commission_collected,
			total_earnings             = restaurant_wallets.total_earnings + EXCLUDED.total_earnings,
			updated_at                 = NOW()
		RETURNING ` + restaurantColumns

	walletDB, err := r.scanRestaurant(r.querier.QueryRow(ctx, query, restaurantID, earning, commission))
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository credit restaurant error: %w", err)
	}

	return ToRestaurantDomain(walletDB), nil
}

func (r *Repository) ReleaseRestaurantHold(ctx context.Context, restaurantID, amount int64) (*entities.RestaurantWallet, error) {
	query := `
		UPDATE restaurant_wallets SET
			on_hold_amount = GREATEST(on_hold_amount - $2, 0),
			updated_at     = NOW()
		WHERE restaurant_id = $1
		RETURNING ` + restaurantColumns

	walletDB, err := r.scanRestaurant(r.querier.QueryRow(ctx, query, restaurantID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository release restaurant hold error: %w", err)
	}

	return ToRestaurantDomain(walletDB), nil
}

func (r *Repository) PayoutRestaurant(ctx context.Context, restaurantID, amount int64) (*entities.RestaurantWallet, error) {
	query := `
		UPDATE restaurant_wallets SET
			available_balance = available_balance - $2,
			pending_payout    = pending_payout + $2,
			updated_at        = NOW()
		WHERE restaurant_id = $1
		  AND available_balance >= $2
		RETURNING ` + restaurantColumns

	walletDB, err := r.scanRestaurant(r.querier.QueryRow(ctx, query, restaurantID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetRestaurant(ctx, restaurantID); getErr != nil {
				return nil, getErr
			}
			return nil, wallet.ErrNegativeBalance
		}
		return nil, fmt.Errorf("unexpected wallet repository payout restaurant error: %w", err)
	}

	return ToRestaurantDomain(walletDB), nil
}

func (r *Repository) GetRestaurant(ctx context.Context, restaurantID int64) (*entities.RestaurantWallet, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurant_wallets WHERE restaurant_id = $1`

	walletDB, err := r.scanRestaurant(r.querier.QueryRow(ctx, query, restaurantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository get restaurant error: %w", err)
	}

	return ToRestaurantDomain(walletDB), nil
}

func (r *Repository) OverwriteRestaurant(ctx context.Context, restaurantID int64, totals entities.RestaurantWalletTotals) (*entities.RestaurantWallet, error) {
	query := `
		INSERT INTO restaurant_wallets (restaurant_id, available_balance, total_commission_collected, total_earnings, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (restaurant_id) DO UPDATE SET
			available_balance          = EXCLUDED.available_balance,
			total_commission_collected = EXCLUDED.total_commission_collected,
			total_earnings             = EXCLUDED.total_earnings,
			updated_at                 = NOW()
		RETURNING ` + restaurantColumns

	walletDB, err := r.scanRestaurant(r.querier.QueryRow(
		ctx,
		query,
		restaurantID,
		totals.AvailableBalance,
		totals.TotalCommissionCollected,
		totals.TotalEarnings,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository overwrite restaurant error: %w", err)
	}

	return ToRestaurantDomain(walletDB), nil
}

func (r *Repository) scanRider(row pgx.Row) (*RiderWalletDB, error) {
	var walletDB RiderWalletDB
	err := row.Scan(
		&walletDB.RiderID,
		&walletDB.CashCollected,
		&walletDB.DeliveryEarnings,
		&walletDB.Penalties,
		&walletDB.Bonuses,
		&walletDB.AvailableWithdraw,
		&walletDB.TotalEarnings,
		&walletDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &walletDB, nil
}

func (r *Repository) scanRestaurant(row pgx.Row) (*RestaurantWalletDB, error) {
	var walletDB RestaurantWalletDB
	err := row.Scan(
		&walletDB.RestaurantID,
		&walletDB.AvailableBalance,
		&walletDB.PendingPayout,
		&walletDB.OnHoldAmount,
		&walletDB.TotalCommissionCollected,
		&walletDB.TotalEarnings,
		&walletDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &walletDB, nil
}
