package bonus

import "settlement/internal/entities"

func ToDomain(b *BonusRecordDB) *entities.RiderBonusRecord {
	if b == nil {
		return nil
	}
	return &entities.RiderBonusRecord{
		ID:                 b.ID,
		RiderID:            b.RiderID,
		BonusDate:          b.BonusDate,
		DailyDeliveryCount: b.DailyDeliveryCount,
		TargetDeliveries:   b.TargetDeliveries,
		BonusAmount:        b.BonusAmount,
		IsBonusAchieved:    b.IsBonusAchieved,
		BonusCreditedAt:    b.BonusCreditedAt,
	}
}
