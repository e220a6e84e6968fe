package settlement

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AlekSi/pointer"
	"settlement/internal/entities"
)

// Settlement проводит финансовый расчет заказа: делит деньги между
// рестораном, курьером и платформой и фиксирует каждую проводку в
// журнале транзакций. Весь расчет выполняется в одной транзакции БД,
// повторный вызов по тому же заказу упирается в settlement-маркер.
type Settlement struct {
	orderRepository       OrderRepository
	walletRepository      WalletRepository
	transactionRepository TransactionRepository
	codService            CODService
	bonusService          BonusService
	payoutFactory         PayoutFactory
	configSource          ConfigSource
	txManager             TxManager
}

func New(
	orderRepository OrderRepository,
	walletRepository WalletRepository,
	transactionRepository TransactionRepository,
	codService CODService,
	bonusService BonusService,
	payoutFactory PayoutFactory,
	configSource ConfigSource,
	txManager TxManager,
) *Settlement {
	return &Settlement{
		orderRepository:       orderRepository,
		walletRepository:      walletRepository,
		transactionRepository: transactionRepository,
		codService:            codService,
		bonusService:          bonusService,
		payoutFactory:         payoutFactory,
		configSource:          configSource,
		txManager:             txManager,
	}
}

// Settle — расчет доставленного заказа. Все проводки или проходят
// вместе, или не проходит ни одна.
func (s *Settlement) Settle(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	cfg := s.configSource.Snapshot()
	settledAt := time.Now().UTC()

	var settled *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.IsSettled() {
			return ErrAlreadySettled
		}
		if order.Status == entities.OrderCancelled {
			return fmt.Errorf("%w: order %s is cancelled", ErrInvalidOrderState, orderID)
		}
		if order.Status != entities.OrderDelivered {
			return fmt.Errorf("%w: order %s in status %s", ErrInvalidOrderState, orderID, order.Status)
		}
		if order.RiderID == 0 {
			return ErrRiderNotAssigned
		}

		split := s.computeSplit(order, cfg)
		split.SettledAt = settledAt

		err = s.orderRepository.MarkSettled(ctx, orderID, split)
		if err != nil {
			return fmt.Errorf("mark settled: %w", err)
		}

		err = s.applyRestaurantSide(ctx, order, split)
		if err != nil {
			return err
		}

		err = s.applyRiderSide(ctx, order, split, settledAt)
		if err != nil {
			return err
		}

		err = s.applyPlatformSide(ctx, order, split)
		if err != nil {
			return err
		}

		err = s.bonusService.Accrue(ctx, order.RiderID, settledAt)
		if err != nil {
			return fmt.Errorf("accrue bonus: %w", err)
		}

		settled, err = s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("reload settled order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settled, nil
}

// Cancel переводит заказ в cancelled, освобождает удержанные средства
// ресторана и возвращает prepaid-оплату клиенту.
func (s *Settlement) Cancel(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	cancelledAt := time.Now().UTC()

	var cancelled *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.MarkCancelled(ctx, orderID, cancelledAt)
		if err != nil {
			return err
		}

		if order.HoldAmount > 0 {
			_, err = s.walletRepository.ReleaseRestaurantHold(ctx, order.RestaurantID, order.HoldAmount)
			if err != nil {
				return fmt.Errorf("release restaurant hold: %w", err)
			}
		}

		if order.PaymentMethod == entities.PaymentPrepaid {
			refund := order.Subtotal - order.Discount
			if refund > 0 {
				_, err = s.transactionRepository.AppendWithRunningBalance(ctx, entities.TransactionModify{
					EntityType: entities.EntityCustomer,
					EntityID:   order.CustomerID,
					OrderID:    pointer.ToString(order.ID),
					Type:       entities.TransactionRefund,
					Amount:     refund,
				})
				if err != nil {
					return fmt.Errorf("append refund transaction: %w", err)
				}
			}
		}

		// терминальная запись в журнале: отмена видна в аудите даже без
		// денежных проводок
		_, err = s.transactionRepository.AppendWithRunningBalance(ctx, entities.TransactionModify{
			EntityType: entities.EntityPlatform,
			EntityID:   platformAccountID,
			OrderID:    pointer.ToString(order.ID),
			Type:       entities.TransactionAdjustment,
			Amount:     0,
		})
		if err != nil {
			return fmt.Errorf("append cancellation transaction: %w", err)
		}

		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

// computeSplit выводит все денежные поля заказа из его исходных данных.
// Оплата курьера равна стоимости доставки, поэтому доставка проходит
// через платформу транзитом и в ее выручке не участвует.
func (s *Settlement) computeSplit(order *entities.Order, cfg entities.SettlementConfig) entities.OrderSettlementUpdate {
	commissionRate := order.CommissionRate
	if commissionRate <= 0 {
		commissionRate = cfg.DefaultCommissionRate
	}

	deliveryFee := s.payoutFactory.DeliveryFee(order.TripDistanceKm, cfg)
	riderEarning := s.payoutFactory.RiderEarning(order.TripDistanceKm, cfg)

	commission := roundPercent(order.Subtotal, commissionRate)

	restaurantEarning := order.Subtotal - order.Discount - commission
	if restaurantEarning < 0 {
		restaurantEarning = 0
	}

	totalPrice := order.Subtotal - order.Discount + deliveryFee

	var gatewayFee int64
	if order.PaymentMethod == entities.PaymentPrepaid {
		gatewayFee = roundPercent(totalPrice, cfg.GatewayFeePercent)
	}

	platformRevenue := commission + deliveryFee - riderEarning - gatewayFee

	return entities.OrderSettlementUpdate{
		DeliveryFee:       deliveryFee,
		CommissionAmount:  commission,
		RestaurantEarning: restaurantEarning,
		RiderEarning:      riderEarning,
		PlatformRevenue:   platformRevenue,
		GatewayFee:        gatewayFee,
		TotalPrice:        totalPrice,
	}
}

func (s *Settlement) applyRestaurantSide(ctx context.Context, order *entities.Order, split entities.OrderSettlementUpdate) error {
	restaurantWallet, err := s.walletRepository.CreditRestaurant(ctx, order.RestaurantID, split.RestaurantEarning, split.CommissionAmount)
	if err != nil {
		return fmt.Errorf("credit restaurant: %w", err)
	}

	if order.HoldAmount > 0 {
		_, err = s.walletRepository.ReleaseRestaurantHold(ctx, order.RestaurantID, order.HoldAmount)
		if err != nil {
			return fmt.Errorf("release restaurant hold: %w", err)
		}
	}

	_, err = s.transactionRepository.Append(ctx, entities.TransactionModify{
		EntityType:   entities.EntityRestaurant,
		EntityID:     order.RestaurantID,
		OrderID:      pointer.ToString(order.ID),
		Type:         entities.TransactionEarning,
		Amount:       split.RestaurantEarning,
		BalanceAfter: restaurantWallet.AvailableBalance,
	})
	if err != nil {
		return fmt.Errorf("append restaurant earning transaction: %w", err)
	}

	return nil
}

func (s *Settlement) applyRiderSide(ctx context.Context, order *entities.Order, split entities.OrderSettlementUpdate, settledAt time.Time) error {
	credit := entities.RiderWalletCredit{
		DeliveryEarnings: split.RiderEarning,
	}
	// prepaid сразу доступен к выводу, наличные COD остаются на руках
	// у курьера до внесения в кассу
	if order.PaymentMethod == entities.PaymentCOD {
		credit.CashCollected = split.TotalPrice
	} else {
		credit.AvailableWithdraw = split.RiderEarning
	}

	riderWallet, err := s.walletRepository.CreditRider(ctx, order.RiderID, credit)
	if err != nil {
		return fmt.Errorf("credit rider: %w", err)
	}

	_, err = s.transactionRepository.Append(ctx, entities.TransactionModify{
		EntityType:   entities.EntityRider,
		EntityID:     order.RiderID,
		OrderID:      pointer.ToString(order.ID),
		Type:         entities.TransactionEarning,
		Amount:       split.RiderEarning,
		BalanceAfter: riderWallet.AvailableWithdraw,
	})
	if err != nil {
		return fmt.Errorf("append rider earning transaction: %w", err)
	}

	if order.PaymentMethod != entities.PaymentCOD {
		return nil
	}

	_, err = s.transactionRepository.Append(ctx, entities.TransactionModify{
		EntityType:   entities.EntityRider,
		EntityID:     order.RiderID,
		OrderID:      pointer.ToString(order.ID),
		Type:         entities.TransactionCashCollected,
		Amount:       split.TotalPrice,
		BalanceAfter: riderWallet.CashCollected,
	})
	if err != nil {
		return fmt.Errorf("append cash collected transaction: %w", err)
	}

	err = s.codService.Record(ctx, entities.CODEntryModify{
		RiderID:        pointer.ToInt64(order.RiderID),
		OrderID:        pointer.ToString(order.ID),
		CODCollected:   pointer.ToInt64(split.TotalPrice),
		RiderEarning:   pointer.ToInt64(split.RiderEarning),
		AdminBalance:   pointer.ToInt64(split.TotalPrice - split.RiderEarning),
		SettlementDate: pointer.ToTime(settledAt),
	})
	if err != nil {
		return fmt.Errorf("record cod entry: %w", err)
	}

	return nil
}

// applyPlatformSide пишет платформенные строки журнала. Комиссия и
// комиссия шлюза дают в сумме platform_revenue заказа, balance_after
// ведется бегущим итогом по журналу.
func (s *Settlement) applyPlatformSide(ctx context.Context, order *entities.Order, split entities.OrderSettlementUpdate) error {
	_, err := s.transactionRepository.AppendWithRunningBalance(ctx, entities.TransactionModify{
		EntityType: entities.EntityPlatform,
		EntityID:   platformAccountID,
		OrderID:    pointer.ToString(order.ID),
		Type:       entities.TransactionCommission,
		Amount:     split.CommissionAmount,
	})
	if err != nil {
		return fmt.Errorf("append platform commission transaction: %w", err)
	}

	if split.GatewayFee > 0 {
		_, err = s.transactionRepository.AppendWithRunningBalance(ctx, entities.TransactionModify{
			EntityType: entities.EntityPlatform,
			EntityID:   platformAccountID,
			OrderID:    pointer.ToString(order.ID),
			Type:       entities.TransactionAdjustment,
			Amount:     -split.GatewayFee,
		})
		if err != nil {
			return fmt.Errorf("append gateway fee transaction: %w", err)
		}
	}

	return nil
}

// Единственный счет платформы в журнале транзакций.
const platformAccountID int64 = 1

func roundPercent(amount int64, percent float64) int64 {
	return int64(math.Round(float64(amount) * percent / 100))
}
