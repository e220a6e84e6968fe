package entities

import "time"

// RiderBonusRecord — дневной счетчик доставок курьера против целевого
// количества. Одна запись на пару (курьер, календарный день).
type RiderBonusRecord struct {
	ID                 int64
	RiderID            int64
	BonusDate          time.Time
	DailyDeliveryCount int64
	TargetDeliveries   int64
	BonusAmount        int64
	IsBonusAchieved    bool
	BonusCreditedAt    *time.Time
}
