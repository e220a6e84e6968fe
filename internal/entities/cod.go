package entities

import "time"

// CODLedgerEntry — запись о наличных, собранных курьером на доставке.
// AdminBalance = CODCollected - RiderEarning и может быть отрицательным:
// платформа должна курьеру больше, чем он собрал наличными.
type CODLedgerEntry struct {
	ID             int64
	RiderID        int64
	OrderID        string
	CODCollected   int64
	RiderEarning   int64
	AdminBalance   int64
	Status         CODEntryStatus
	SettlementDate time.Time
	PaidAt         *time.Time
	CreatedAt      time.Time
}

type CODEntryStatus string

const (
	CODPending CODEntryStatus = "pending"
	CODPaid    CODEntryStatus = "paid"
)

func (s CODEntryStatus) String() string {
	return string(s)
}

type CODEntryModify struct {
	RiderID        *int64
	OrderID        *string
	CODCollected   *int64
	RiderEarning   *int64
	AdminBalance   *int64
	SettlementDate *time.Time
}

// CODOutstanding — агрегат долга курьера перед платформой по pending-записям.
type CODOutstanding struct {
	RiderID          int64
	Amount           int64
	CollectedPending int64
	PendingEntries   int64
	OldestPendingAt  *time.Time
	SettlementStatus RiderSettlementStatus
}

// CODSettlement — итог погашения COD-долга курьером.
type CODSettlement struct {
	RiderID         int64
	EntriesPaid     int64
	AmountDeposited int64
	CollectedPaid   int64
}

type RiderSettlementStatus string

const (
	SettlementActive  RiderSettlementStatus = "active"
	SettlementOverdue RiderSettlementStatus = "overdue"
	SettlementBlocked RiderSettlementStatus = "blocked"
)

func (s RiderSettlementStatus) String() string {
	return string(s)
}

// RiderProfile хранит settlement-статус курьера, который читает
// внешний диспатч при назначении заказов.
type RiderProfile struct {
	RiderID          int64
	SettlementStatus RiderSettlementStatus
	DebtSince        *time.Time
	UpdatedAt        time.Time
}
