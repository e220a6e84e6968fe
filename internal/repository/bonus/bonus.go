package bonus

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"settlement/internal/entities"
)

const recordColumns = `
		id, rider_id, bonus_date, daily_delivery_count, target_deliveries,
		bonus_amount, is_bonus_achieved, bonus_credited_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// IncrementDaily увеличивает дневной счетчик доставок, создавая запись
// дня при первом срабатывании. target и amount фиксируются значениями
// конфига на момент создания записи.
func (r *Repository) IncrementDaily(ctx context.Context, riderID int64, day time.Time, targetDeliveries, bonusAmount int64) (*entities.RiderBonusRecord, error) {
	query := `
		INSERT INTO rider_bonus_records (rider_id, bonus_date, daily_delivery_count, target_deliveries, bonus_amount)
		VALUES ($1, $2, 1, $3, $4)
		ON CONFLICT (rider_id, bonus_date) DO UPDATE SET
			daily_delivery_count = rider_bonus_records.daily_delivery_count + 1
		RETURNING ` + recordColumns

	recordDB, err := r.scan(r.querier.QueryRow(ctx, query, riderID, day, targetDeliveries, bonusAmount))
	if err != nil {
		return nil, fmt.Errorf("unexpected bonus repository increment daily error: %w", err)
	}

	return ToDomain(recordDB), nil
}

// MarkAchieved — CAS начисления бонуса: проходит ровно один раз для
// пары (курьер, день). false означает, что бонус уже начислен.
func (r *Repository) MarkAchieved(ctx context.Context, riderID int64, day, creditedAt time.Time) (bool, error) {
	query := `
		UPDATE rider_bonus_records SET
			is_bonus_achieved = TRUE,
			bonus_credited_at = $3
		WHERE rider_id = $1
		  AND bonus_date = $2
		  AND is_bonus_achieved = FALSE
	`

	result, err := r.querier.Exec(ctx, query, riderID, day, creditedAt)
	if err != nil {
		return false, fmt.Errorf("unexpected bonus repository mark achieved error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) scan(row pgx.Row) (*BonusRecordDB, error) {
	var recordDB BonusRecordDB
	err := row.Scan(
		&recordDB.ID,
		&recordDB.RiderID,
		&recordDB.BonusDate,
		&recordDB.DailyDeliveryCount,
		&recordDB.TargetDeliveries,
		&recordDB.BonusAmount,
		&recordDB.IsBonusAchieved,
		&recordDB.BonusCreditedAt,
	)
	if err != nil {
		return nil, err
	}
	return &recordDB, nil
}
