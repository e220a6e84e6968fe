package bonus

import "time"

type BonusRecordDB struct {
	ID                 int64
	RiderID            int64
	BonusDate          time.Time
	DailyDeliveryCount int64
	TargetDeliveries   int64
	BonusAmount        int64
	IsBonusAchieved    bool
	BonusCreditedAt    *time.Time
}
