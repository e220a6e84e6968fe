package transaction

import "time"

type TransactionDB struct {
	ID           int64
	EntityType   string
	EntityID     int64
	OrderID      *string
	Type         string
	Amount       int64
	BalanceAfter int64
	CreatedAt    time.Time
}
