package cod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"settlement/internal/entities"
	"settlement/internal/repository"
	"settlement/internal/service/cod"
)

const entryColumns = `
		id, rider_id, order_id, cod_collected, rider_earning, admin_balance,
		status, settlement_date, paid_at, created_at`

const profileColumns = `rider_id, settlement_status, debt_since, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет запись о собранных наличных. Уникальность по order_id
// делает повторный settlement того же заказа видимым как конфликт.
func (r *Repository) Create(ctx context.Context, entryModify entities.CODEntryModify) (*entities.CODLedgerEntry, error) {
	query := `
		INSERT INTO cod_ledger_entries (rider_id, order_id, cod_collected, rider_earning, admin_balance, status, settlement_date)
		VALUES ($1, $2, $3, $4, $5, 'pending', COALESCE($6, NOW()))
		RETURNING ` + entryColumns

	entryDB, err := r.scanEntry(r.querier.QueryRow(
		ctx,
		query,
		derefOrZero(entryModify.RiderID),
		derefOrZero(entryModify.OrderID),
		derefOrZero(entryModify.CODCollected),
		derefOrZero(entryModify.RiderEarning),
		derefOrZero(entryModify.AdminBalance),
		entryModify.SettlementDate,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, cod.ErrEntryAlreadyRecorded
		}
		return nil, fmt.Errorf("unexpected cod repository create error: %w", err)
	}

	return ToDomain(entryDB), nil
}

// Outstanding агрегирует pending-записи курьера. Для курьера без
// записей возвращает нулевой агрегат, а не ошибку.
func (r *Repository) Outstanding(ctx context.Context, riderID int64) (*entities.CODOutstanding, error) {
	query := `
		SELECT
			$1::bigint,
			COALESCE(SUM(admin_balance), 0),
			COALESCE(SUM(cod_collected), 0),
			COUNT(*),
			MIN(settlement_date)
		FROM cod_ledger_entries
		WHERE rider_id = $1 AND status = 'pending'
	`

	var outstandingDB OutstandingDB
	err := r.querier.QueryRow(ctx, query, riderID).Scan(
		&outstandingDB.RiderID,
		&outstandingDB.Amount,
		&outstandingDB.CollectedPending,
		&outstandingDB.PendingEntries,
		&outstandingDB.OldestPendingAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected cod repository outstanding error: %w", err)
	}

	return ToOutstandingDomain(&outstandingDB), nil
}

// MarkPaid закрывает pending-записи курьера с settlement_date не позже
// upto одним UPDATE и возвращает, сколько записей закрыто и на какую
// сумму долга.
func (r *Repository) MarkPaid(ctx context.Context, riderID int64, upto, paidAt time.Time) (*entities.CODSettlement, error) {
	query := `
		WITH paid AS (
			UPDATE cod_ledger_entries SET
				status  = 'paid',
				paid_at = $2
			WHERE rider_id = $1 AND status = 'pending' AND settlement_date <= $3
			RETURNING cod_collected, admin_balance
		)
		SELECT COUNT(*), COALESCE(SUM(admin_balance), 0), COALESCE(SUM(cod_collected), 0)
		FROM paid
	`

	settlement := entities.CODSettlement{RiderID: riderID}
	var collectedPaid int64
	err := r.querier.QueryRow(ctx, query, riderID, paidAt, upto).Scan(
		&settlement.EntriesPaid,
		&settlement.AmountDeposited,
		&collectedPaid,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected cod repository mark paid error: %w", err)
	}
	settlement.CollectedPaid = collectedPaid

	return &settlement, nil
}

// ListPendingSummaries — агрегаты по всем должникам для фонового свипа статусов.
func (r *Repository) ListPendingSummaries(ctx context.Context) ([]entities.CODOutstanding, error) {
	query := `
		SELECT
			rider_id,
			COALESCE(SUM(admin_balance), 0),
			COALESCE(SUM(cod_collected), 0),
			COUNT(*),
			MIN(settlement_date)
		FROM cod_ledger_entries
		WHERE status = 'pending'
		GROUP BY rider_id
		ORDER BY rider_id ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected cod repository list pending summaries error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.CODOutstanding, 0)
	for rows.Next() {
		var outstandingDB OutstandingDB
		err := rows.Scan(
			&outstandingDB.RiderID,
			&outstandingDB.Amount,
			&outstandingDB.CollectedPending,
			&outstandingDB.PendingEntries,
			&outstandingDB.OldestPendingAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected cod repository scan error: %w", err)
		}
		result = append(result, *ToOutstandingDomain(&outstandingDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected cod repository rows error: %w", err)
	}

	return result, nil
}

func (r *Repository) GetProfile(ctx context.Context, riderID int64) (*entities.RiderProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM rider_profiles WHERE rider_id = $1`

	var profileDB RiderProfileDB
	err := r.querier.QueryRow(ctx, query, riderID).Scan(
		&profileDB.RiderID,
		&profileDB.SettlementStatus,
		&profileDB.DebtSince,
		&profileDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cod.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected cod repository get profile error: %w", err)
	}

	return ToProfileDomain(&profileDB), nil
}

// UpsertProfileStatus фиксирует settlement-статус курьера. debt_since
// сохраняет момент первого появления долга и сбрасывается при active.
func (r *Repository) UpsertProfileStatus(ctx context.Context, riderID int64, status entities.RiderSettlementStatus, debtSince *time.Time) (*entities.RiderProfile, error) {
	query := `
		INSERT INTO rider_profiles (rider_id, settlement_status, debt_since, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (rider_id) DO UPDATE SET
			settlement_status = EXCLUDED.settlement_status,
			debt_since        = EXCLUDED.debt_since,
			updated_at        = NOW()
		RETURNING ` + profileColumns

	var profileDB RiderProfileDB
	err := r.querier.QueryRow(ctx, query, riderID, status.String(), debtSince).Scan(
		&profileDB.RiderID,
		&profileDB.SettlementStatus,
		&profileDB.DebtSince,
		&profileDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected cod repository upsert profile status error: %w", err)
	}

	return ToProfileDomain(&profileDB), nil
}

func (r *Repository) scanEntry(row pgx.Row) (*CODEntryDB, error) {
	var entryDB CODEntryDB
	err := row.Scan(
		&entryDB.ID,
		&entryDB.RiderID,
		&entryDB.OrderID,
		&entryDB.CODCollected,
		&entryDB.RiderEarning,
		&entryDB.AdminBalance,
		&entryDB.Status,
		&entryDB.SettlementDate,
		&entryDB.PaidAt,
		&entryDB.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entryDB, nil
}

func derefOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
