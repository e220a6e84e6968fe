package entities

// RiderSettledOrder — минимальный срез заказа для пересчета заработка
// курьера: оплата заново выводится из зафиксированной дистанции,
// а не берется из возможно испорченного поля rider_earning.
type RiderSettledOrder struct {
	ID             string
	TripDistanceKm float64
	PaymentMethod  PaymentMethodType
	RiderEarning   int64
}

// ReconciliationReport — результат сверки одной сущности.
// Delta != 0 означает обнаруженный и уже исправленный дрейф.
type ReconciliationReport struct {
	EntityType      TransactionEntityType
	EntityID        int64
	PreviousTotal   int64
	RecomputedTotal int64
	Delta           int64
	CODOutstanding  int64
}
