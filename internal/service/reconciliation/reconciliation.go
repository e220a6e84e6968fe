package reconciliation

import (
	"context"
	"errors"
	"fmt"

	"settlement/internal/entities"
	"settlement/internal/service/wallet"
)

// Reconciliation — идемпотентная сверка кэшей кошельков с источниками
// истины: заработок курьера заново выводится из дистанций рассчитанных
// заказов, остальное суммируется по журналу транзакций. Заказы при
// сверке не изменяются, найденный дрейф исправляется в кошельке и
// фиксируется корректирующей проводкой.
type Reconciliation struct {
	orderRepository       OrderRepository
	walletRepository      WalletRepository
	transactionRepository TransactionRepository
	codRepository         CODRepository
	payoutFactory         PayoutFactory
	configSource          ConfigSource
	txManager             TxManager
}

func New(
	orderRepository OrderRepository,
	walletRepository WalletRepository,
	transactionRepository TransactionRepository,
	codRepository CODRepository,
	payoutFactory PayoutFactory,
	configSource ConfigSource,
	txManager TxManager,
) *Reconciliation {
	return &Reconciliation{
		orderRepository:       orderRepository,
		walletRepository:      walletRepository,
		transactionRepository: transactionRepository,
		codRepository:         codRepository,
		payoutFactory:         payoutFactory,
		configSource:          configSource,
		txManager:             txManager,
	}
}

func (r *Reconciliation) Reconcile(ctx context.Context, entityType entities.TransactionEntityType, entityID int64) (*entities.ReconciliationReport, error) {
	switch entityType {
	case entities.EntityRider:
		return r.ReconcileRider(ctx, entityID)
	case entities.EntityRestaurant:
		return r.ReconcileRestaurant(ctx, entityID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}
}

// ReconcileRider пересчитывает кошелек курьера с нуля. Оплата каждого
// заказа выводится заново из дистанции, поэтому исторические значения,
// записанные до ввода потолка выплат, пересчет приводит к потолку.
func (r *Reconciliation) ReconcileRider(ctx context.Context, riderID int64) (*entities.ReconciliationReport, error) {
	if riderID <= 0 {
		return nil, ErrInvalidEntityID
	}

	cfg := r.configSource.Snapshot()

	var report *entities.ReconciliationReport
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		orders, err := r.orderRepository.ListRiderSettledOrders(ctx, riderID)
		if err != nil {
			return fmt.Errorf("list rider settled orders: %w", err)
		}

		var deliveryEarnings, prepaidEarnings int64
		for _, order := range orders {
			earning := r.payoutFactory.RiderEarning(order.TripDistanceKm, cfg)
			deliveryEarnings += earning
			if order.PaymentMethod == entities.PaymentPrepaid {
				prepaidEarnings += earning
			}
		}

		sumBonus, err := r.transactionRepository.SumByType(ctx, entities.EntityRider, riderID, entities.TransactionBonus)
		if err != nil {
			return fmt.Errorf("sum rider bonuses: %w", err)
		}
		// штрафы и выводы лежат в журнале отрицательными суммами
		sumPenalty, err := r.transactionRepository.SumByType(ctx, entities.EntityRider, riderID, entities.TransactionPenalty)
		if err != nil {
			return fmt.Errorf("sum rider penalties: %w", err)
		}
		sumPayout, err := r.transactionRepository.SumByType(ctx, entities.EntityRider, riderID, entities.TransactionPayout)
		if err != nil {
			return fmt.Errorf("sum rider payouts: %w", err)
		}

		outstanding, err := r.codRepository.Outstanding(ctx, riderID)
		if err != nil {
			return fmt.Errorf("get cod outstanding: %w", err)
		}

		previous, err := r.walletRepository.GetRider(ctx, riderID)
		if err != nil {
			if !errors.Is(err, wallet.ErrWalletNotFound) {
				return fmt.Errorf("get rider wallet: %w", err)
			}
			previous = &entities.RiderWallet{RiderID: riderID}
		}

		totals := entities.RiderWalletTotals{
			CashCollected:     outstanding.CollectedPending,
			DeliveryEarnings:  deliveryEarnings,
			Penalties:         -sumPenalty,
			Bonuses:           sumBonus,
			AvailableWithdraw: prepaidEarnings + sumBonus + sumPenalty + sumPayout,
			TotalEarnings:     deliveryEarnings + sumBonus + sumPenalty,
		}

		// дельта кошелька фиксируется корректирующей проводкой: любой
		// источник дрейфа, от пересчета потолка выплат до правки строки
		// руками, остается виден в журнале
		delta := totals.TotalEarnings - previous.TotalEarnings
		if delta != 0 {
			_, err = r.transactionRepository.Append(ctx, entities.TransactionModify{
				EntityType:   entities.EntityRider,
				EntityID:     riderID,
				Type:         entities.TransactionAdjustment,
				Amount:       delta,
				BalanceAfter: totals.AvailableWithdraw,
			})
			if err != nil {
				return fmt.Errorf("append adjustment transaction: %w", err)
			}
		}

		_, err = r.walletRepository.OverwriteRider(ctx, riderID, totals)
		if err != nil {
			return fmt.Errorf("overwrite rider wallet: %w", err)
		}

		report = &entities.ReconciliationReport{
			EntityType:      entities.EntityRider,
			EntityID:        riderID,
			PreviousTotal:   previous.TotalEarnings,
			RecomputedTotal: totals.TotalEarnings,
			Delta:           delta,
			CODOutstanding:  outstanding.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *Reconciliation) ReconcileRestaurant(ctx context.Context, restaurantID int64) (*entities.ReconciliationReport, error) {
	if restaurantID <= 0 {
		return nil, ErrInvalidEntityID
	}

	var report *entities.ReconciliationReport
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		earnings, commission, err := r.orderRepository.SumRestaurantEarnings(ctx, restaurantID)
		if err != nil {
			return fmt.Errorf("sum restaurant earnings: %w", err)
		}

		sumPayout, err := r.transactionRepository.SumByType(ctx, entities.EntityRestaurant, restaurantID, entities.TransactionPayout)
		if err != nil {
			return fmt.Errorf("sum restaurant payouts: %w", err)
		}

		previous, err := r.walletRepository.GetRestaurant(ctx, restaurantID)
		if err != nil {
			if !errors.Is(err, wallet.ErrWalletNotFound) {
				return fmt.Errorf("get restaurant wallet: %w", err)
			}
			previous = &entities.RestaurantWallet{RestaurantID: restaurantID}
		}

		totals := entities.RestaurantWalletTotals{
			AvailableBalance:         earnings + sumPayout,
			TotalCommissionCollected: commission,
			TotalEarnings:            earnings,
		}

		delta := totals.TotalEarnings - previous.TotalEarnings
		if delta != 0 {
			_, err = r.transactionRepository.Append(ctx, entities.TransactionModify{
				EntityType:   entities.EntityRestaurant,
				EntityID:     restaurantID,
				Type:         entities.TransactionAdjustment,
				Amount:       delta,
				BalanceAfter: totals.AvailableBalance,
			})
			if err != nil {
				return fmt.Errorf("append adjustment transaction: %w", err)
			}
		}

		_, err = r.walletRepository.OverwriteRestaurant(ctx, restaurantID, totals)
		if err != nil {
			return fmt.Errorf("overwrite restaurant wallet: %w", err)
		}

		report = &entities.ReconciliationReport{
			EntityType:      entities.EntityRestaurant,
			EntityID:        restaurantID,
			PreviousTotal:   previous.TotalEarnings,
			RecomputedTotal: totals.TotalEarnings,
			Delta:           delta,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// ReconcileAll сверяет всех курьеров и все рестораны, встречавшиеся
// в рассчитанных заказах. Каждая сущность сверяется в своей
// транзакции, чтобы сбой одной не откатывал остальных.
func (r *Reconciliation) ReconcileAll(ctx context.Context) ([]entities.ReconciliationReport, error) {
	riderIDs, err := r.orderRepository.ListSettledRiderIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settled rider ids: %w", err)
	}
	restaurantIDs, err := r.orderRepository.ListSettledRestaurantIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settled restaurant ids: %w", err)
	}

	reports := make([]entities.ReconciliationReport, 0, len(riderIDs)+len(restaurantIDs))

	for _, riderID := range riderIDs {
		report, err := r.ReconcileRider(ctx, riderID)
		if err != nil {
			return reports, fmt.Errorf("reconcile rider %d: %w", riderID, err)
		}
		reports = append(reports, *report)
	}

	for _, restaurantID := range restaurantIDs {
		report, err := r.ReconcileRestaurant(ctx, restaurantID)
		if err != nil {
			return reports, fmt.Errorf("reconcile restaurant %d: %w", restaurantID, err)
		}
		reports = append(reports, *report)
	}

	return reports, nil
}
