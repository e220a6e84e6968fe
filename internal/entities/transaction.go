package entities

import "time"

// Transaction — строка append-only журнала денежных операций.
// Журнал является источником истины: балансы кошельков должны
// воспроизводиться его повторным проигрыванием.
type Transaction struct {
	ID           int64
	EntityType   TransactionEntityType
	EntityID     int64
	OrderID      string
	Type         TransactionType
	Amount       int64
	BalanceAfter int64
	CreatedAt    time.Time
}

type TransactionEntityType string

const (
	EntityRestaurant TransactionEntityType = "restaurant"
	EntityRider      TransactionEntityType = "rider"
	EntityPlatform   TransactionEntityType = "platform"
	EntityCustomer   TransactionEntityType = "customer"
)

func (t TransactionEntityType) String() string {
	return string(t)
}

type TransactionType string

const (
	TransactionCommission    TransactionType = "commission"
	TransactionEarning       TransactionType = "earning"
	TransactionPayout        TransactionType = "payout"
	TransactionRefund        TransactionType = "refund"
	TransactionPenalty       TransactionType = "penalty"
	TransactionBonus         TransactionType = "bonus"
	TransactionCashCollected TransactionType = "cash_collected"
	TransactionCashDeposit   TransactionType = "cash_deposit"
	TransactionAdjustment    TransactionType = "adjustment"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionModify struct {
	EntityType   TransactionEntityType
	EntityID     int64
	OrderID      *string
	Type         TransactionType
	Amount       int64
	BalanceAfter int64
}

// TransactionFilter — параметры выборки журнала по сущности и диапазону времени.
type TransactionFilter struct {
	EntityType TransactionEntityType
	EntityID   int64
	From       *time.Time
	To         *time.Time
	Limit      int
}
