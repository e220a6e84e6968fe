package transaction

import "settlement/internal/entities"

func ToDomain(t *TransactionDB) *entities.Transaction {
	if t == nil {
		return nil
	}

	var orderID string
	if t.OrderID != nil {
		orderID = *t.OrderID
	}

	return &entities.Transaction{
		ID:           t.ID,
		EntityType:   entities.TransactionEntityType(t.EntityType),
		EntityID:     t.EntityID,
		OrderID:      orderID,
		Type:         entities.TransactionType(t.Type),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}
}
