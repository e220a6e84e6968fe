package cod

import "time"

type CODEntryDB struct {
	ID             int64
	RiderID        int64
	OrderID        string
	CODCollected   int64
	RiderEarning   int64
	AdminBalance   int64
	Status         string
	SettlementDate time.Time
	PaidAt         *time.Time
	CreatedAt      time.Time
}

type OutstandingDB struct {
	RiderID          int64
	Amount           int64
	CollectedPending int64
	PendingEntries   int64
	OldestPendingAt  *time.Time
}

type RiderProfileDB struct {
	RiderID          int64
	SettlementStatus string
	DebtSince        *time.Time
	UpdatedAt        time.Time
}
