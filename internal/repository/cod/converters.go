package cod

import "settlement/internal/entities"

func ToDomain(e *CODEntryDB) *entities.CODLedgerEntry {
	if e == nil {
		return nil
	}
	return &entities.CODLedgerEntry{
		ID:             e.ID,
		RiderID:        e.RiderID,
		OrderID:        e.OrderID,
		CODCollected:   e.CODCollected,
		RiderEarning:   e.RiderEarning,
		AdminBalance:   e.AdminBalance,
		Status:         entities.CODEntryStatus(e.Status),
		SettlementDate: e.SettlementDate,
		PaidAt:         e.PaidAt,
		CreatedAt:      e.CreatedAt,
	}
}

func ToOutstandingDomain(o *OutstandingDB) *entities.CODOutstanding {
	if o == nil {
		return nil
	}
	return &entities.CODOutstanding{
		RiderID:          o.RiderID,
		Amount:           o.Amount,
		CollectedPending: o.CollectedPending,
		PendingEntries:   o.PendingEntries,
		OldestPendingAt:  o.OldestPendingAt,
	}
}

func ToProfileDomain(p *RiderProfileDB) *entities.RiderProfile {
	if p == nil {
		return nil
	}
	return &entities.RiderProfile{
		RiderID:          p.RiderID,
		SettlementStatus: entities.RiderSettlementStatus(p.SettlementStatus),
		DebtSince:        p.DebtSince,
		UpdatedAt:        p.UpdatedAt,
	}
}
