package transaction

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"settlement/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const transactionColumns = `id, entity_type, entity_id, order_id, type, amount, balance_after, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append добавляет строку журнала с уже известным balance_after
// (его считает сервис из возвращенного кошельком баланса).
func (r *Repository) Append(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error) {
	query := `
		INSERT INTO transactions (entity_type, entity_id, order_id, type, amount, balance_after)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns

	transactionDB, err := r.scan(r.querier.QueryRow(
		ctx,
		query,
		transactionModify.EntityType.String(),
		transactionModify.EntityID,
		transactionModify.OrderID,
		transactionModify.Type.String(),
		transactionModify.Amount,
		transactionModify.BalanceAfter,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository append error: %w", err)
	}

	return ToDomain(transactionDB), nil
}

// AppendWithRunningBalance считает balance_after от последней строки
// той же сущности прямо в INSERT. Используется для platform-счета,
// у которого нет строки-кошелька.
func (r *Repository) AppendWithRunningBalance(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error) {
	query := `
		INSERT INTO transactions (entity_type, entity_id, order_id, type, amount, balance_after)
		SELECT $1, $2, $3, $4, $5,
			COALESCE((
				SELECT balance_after
				FROM transactions
				WHERE entity_type = $1 AND entity_id = $2
				ORDER BY id DESC
				LIMIT 1
			), 0) + $5
		RETURNING ` + transactionColumns

	transactionDB, err := r.scan(r.querier.QueryRow(
		ctx,
		query,
		transactionModify.EntityType.String(),
		transactionModify.EntityID,
		transactionModify.OrderID,
		transactionModify.Type.String(),
		transactionModify.Amount,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository append with running balance error: %w", err)
	}

	return ToDomain(transactionDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error) {
	builder := qb.
		Select("id", "entity_type", "entity_id", "order_id", "type", "amount", "balance_after", "created_at").
		From("transactions").
		OrderBy("id DESC")

	// опциональные фильтры
	if filter.EntityType != "" {
		builder = builder.Where(sq.Eq{"entity_type": filter.EntityType.String()})
	}
	if filter.EntityID != 0 {
		builder = builder.Where(sq.Eq{"entity_id": filter.EntityID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.To})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository build query error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository list error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Transaction, 0)
	for rows.Next() {
		transactionDB, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected transaction repository scan error: %w", err)
		}
		result = append(result, *ToDomain(transactionDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected transaction repository rows error: %w", err)
	}

	return result, nil
}

// SumByType — сумма по типу операции для пересчета балансов reconciliation.
func (r *Repository) SumByType(ctx context.Context, entityType entities.TransactionEntityType, entityID int64, transactionType entities.TransactionType) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE entity_type = $1 AND entity_id = $2 AND type = $3
	`

	var sum int64
	err := r.querier.QueryRow(ctx, query, entityType.String(), entityID, transactionType.String()).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("unexpected transaction repository sum by type error: %w", err)
	}

	return sum, nil
}

func (r *Repository) scan(row pgx.Row) (*TransactionDB, error) {
	var transactionDB TransactionDB
	err := row.Scan(
		&transactionDB.ID,
		&transactionDB.EntityType,
		&transactionDB.EntityID,
		&transactionDB.OrderID,
		&transactionDB.Type,
		&transactionDB.Amount,
		&transactionDB.BalanceAfter,
		&transactionDB.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &transactionDB, nil
}
