package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"settlement/internal/entities"
	"settlement/internal/service/settlement"
)

const orderColumns = `
		id, customer_id, restaurant_id, rider_id,
		subtotal, discount, trip_distance_km, payment_method, commission_rate, hold_amount,
		delivery_fee, commission_amount, restaurant_earning, rider_earning,
		platform_revenue, gateway_fee, total_price,
		status, created_at, accepted_at, picked_up_at, delivered_at, cancelled_at, settled_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert создает заказ или обновляет его нерасчетные поля по событию
// жизненного цикла. После settlement заказ неизменяем: конфликтный
// апдейт отфильтрован по settled_at IS NULL, и тогда возвращается
// сохраненная строка как есть.
func (r *Repository) Upsert(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	query := `
		INSERT INTO orders (
			id, customer_id, restaurant_id, rider_id,
			subtotal, discount, trip_distance_km, payment_method, commission_rate, hold_amount,
			status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, NOW()))
		ON CONFLICT (id) DO UPDATE SET
			rider_id         = EXCLUDED.rider_id,
			subtotal         = EXCLUDED.subtotal,
			discount         = EXCLUDED.discount,
			trip_distance_km = EXCLUDED.trip_distance_km,
			payment_method   = EXCLUDED.payment_method,
			commission_rate  = EXCLUDED.commission_rate,
			hold_amount      = EXCLUDED.hold_amount,
			status           = EXCLUDED.status
		WHERE orders.settled_at IS NULL
		RETURNING ` + orderColumns

	args := []interface{}{
		valueOrZero(orderModify.ID),
		valueOrZero(orderModify.CustomerID),
		valueOrZero(orderModify.RestaurantID),
		valueOrZero(orderModify.RiderID),
		valueOrZero(orderModify.Subtotal),
		valueOrZero(orderModify.Discount),
		valueOrZero(orderModify.TripDistanceKm),
		paymentMethodOrDefault(orderModify.PaymentMethod),
		valueOrZero(orderModify.CommissionRate),
		valueOrZero(orderModify.HoldAmount),
		statusOrDefault(orderModify.Status),
		orderModify.CreatedAt,
	}

	orderDB, err := r.scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// заказ уже рассчитан, событие запоздало — отдаем сохраненную версию
			return r.GetByID(ctx, *orderModify.ID)
		}
		return nil, fmt.Errorf("unexpected order repository upsert error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	orderDB, err := r.scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlement.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// MarkSettled — CAS settlement-маркера: записывает расчетные поля
// доставленного заказа одним UPDATE. Повторный вызов не проходит
// условие settled_at IS NULL и возвращает ErrAlreadySettled, заказ
// в любом статусе кроме delivered расчету не подлежит.
func (r *Repository) MarkSettled(ctx context.Context, orderID string, upd entities.OrderSettlementUpdate) error {
	query := `
		UPDATE orders SET
			delivered_at       = COALESCE(delivered_at, $2),
			settled_at         = $2,
			delivery_fee       = $3,
			commission_amount  = $4,
			restaurant_earning = $5,
			rider_earning      = $6,
			platform_revenue   = $7,
			gateway_fee        = $8,
			total_price        = $9
		WHERE id = $1
		  AND settled_at IS NULL
		  AND status = 'delivered'
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		orderID,
		upd.SettledAt,
		upd.DeliveryFee,
		upd.CommissionAmount,
		upd.RestaurantEarning,
		upd.RiderEarning,
		upd.PlatformRevenue,
		upd.GatewayFee,
		upd.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository mark settled error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.resolveCASMiss(ctx, orderID)
	}

	return nil
}

// MarkCancelled переводит заказ в cancelled, если он еще не рассчитан.
// Возвращает заказ для освобождения зарезервированных средств.
func (r *Repository) MarkCancelled(ctx context.Context, orderID string, cancelledAt time.Time) (*entities.Order, error) {
	query := `
		UPDATE orders SET
			status       = 'cancelled',
			cancelled_at = $2
		WHERE id = $1
		  AND settled_at IS NULL
		  AND status NOT IN ('delivered', 'cancelled')
		RETURNING ` + orderColumns

	orderDB, err := r.scanOrder(r.querier.QueryRow(ctx, query, orderID, cancelledAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveCancelMiss(ctx, orderID)
		}
		return nil, fmt.Errorf("unexpected order repository mark cancelled error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// ListRiderSettledOrders отдает рассчитанные заказы курьера для
// reconciliation: дистанция для повторного вывода оплаты и способ
// оплаты для пересчета available_withdraw.
func (r *Repository) ListRiderSettledOrders(ctx context.Context, riderID int64) ([]entities.RiderSettledOrder, error) {
	query := `
		SELECT id, trip_distance_km, payment_method, rider_earning
		FROM orders
		WHERE rider_id = $1
		  AND status = 'delivered'
		  AND settled_at IS NOT NULL
		ORDER BY settled_at ASC
	`

	rows, err := r.querier.Query(ctx, query, riderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list rider settled error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.RiderSettledOrder, 0)
	for rows.Next() {
		var orderDB RiderSettledOrderDB
		err := rows.Scan(&orderDB.ID, &orderDB.TripDistanceKm, &orderDB.PaymentMethod, &orderDB.RiderEarning)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		result = append(result, ToRiderSettledDomain(&orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return result, nil
}

func (r *Repository) SumRestaurantEarnings(ctx context.Context, restaurantID int64) (earnings, commission int64, err error) {
	query := `
		SELECT
			COALESCE(SUM(restaurant_earning), 0),
			COALESCE(SUM(commission_amount), 0)
		FROM orders
		WHERE restaurant_id = $1
		  AND status = 'delivered'
		  AND settled_at IS NOT NULL
	`

	err = r.querier.QueryRow(ctx, query, restaurantID).Scan(&earnings, &commission)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected order repository sum restaurant earnings error: %w", err)
	}

	return earnings, commission, nil
}

func (r *Repository) ListSettledRiderIDs(ctx context.Context) ([]int64, error) {
	query := `
		SELECT DISTINCT rider_id
		FROM orders
		WHERE settled_at IS NOT NULL AND rider_id != 0
		ORDER BY rider_id ASC
	`
	return r.listIDs(ctx, query)
}

func (r *Repository) ListSettledRestaurantIDs(ctx context.Context) ([]int64, error) {
	query := `
		SELECT DISTINCT restaurant_id
		FROM orders
		WHERE settled_at IS NOT NULL
		ORDER BY restaurant_id ASC
	`
	return r.listIDs(ctx, query)
}

func (r *Repository) listIDs(ctx context.Context, query string) ([]int64, error) {
	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list ids error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected order repository scan id error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return ids, nil
}

// resolveCASMiss различает причины непрошедшего settlement CAS.
func (r *Repository) resolveCASMiss(ctx context.Context, orderID string) error {
	order, err := r.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.IsSettled() {
		return settlement.ErrAlreadySettled
	}
	return fmt.Errorf("%w: order %s in status %s", settlement.ErrInvalidOrderState, orderID, order.Status)
}

func (r *Repository) resolveCancelMiss(ctx context.Context, orderID string) error {
	order, err := r.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status == entities.OrderCancelled {
		return settlement.ErrAlreadyCancelled
	}
	if order.IsSettled() {
		return settlement.ErrAlreadySettled
	}
	return fmt.Errorf("%w: order %s in status %s", settlement.ErrInvalidOrderState, orderID, order.Status)
}

func (r *Repository) scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.CustomerID,
		&orderDB.RestaurantID,
		&orderDB.RiderID,
		&orderDB.Subtotal,
		&orderDB.Discount,
		&orderDB.TripDistanceKm,
		&orderDB.PaymentMethod,
		&orderDB.CommissionRate,
		&orderDB.HoldAmount,
		&orderDB.DeliveryFee,
		&orderDB.CommissionAmount,
		&orderDB.RestaurantEarning,
		&orderDB.RiderEarning,
		&orderDB.PlatformRevenue,
		&orderDB.GatewayFee,
		&orderDB.TotalPrice,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.AcceptedAt,
		&orderDB.PickedUpAt,
		&orderDB.DeliveredAt,
		&orderDB.CancelledAt,
		&orderDB.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}

func valueOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

func statusOrDefault(status *entities.OrderStatusType) string {
	if status == nil {
		return entities.OrderPending.String()
	}
	return status.String()
}

func paymentMethodOrDefault(method *entities.PaymentMethodType) string {
	if method == nil {
		return entities.PaymentPrepaid.String()
	}
	return method.String()
}
