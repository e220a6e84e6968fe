package entities

// SettlementConfig — снапшот настроек, резолвится один раз на вызов
// settlement и передается явно, а не читается из глобального состояния.
// Это делает расчеты воспроизводимыми в тестах.
type SettlementConfig struct {
	// Комиссия платформы с ресторана, процент от subtotal.
	DefaultCommissionRate float64

	// Оплата курьера: база + за километр, с жестким потолком.
	RiderBasePay       int64
	RiderPerKmRate     int64
	RiderEarningCap    int64
	FallbackDistanceKm float64

	// Комиссия платежного шлюза для prepaid-заказов, процент от totalPrice.
	GatewayFeePercent float64

	// Дневной бонус курьера.
	BonusTargetDeliveries int64
	BonusAmount           int64

	// Пороги перевода settlement-статуса курьера по COD-долгу.
	CODOverdueAmount int64
	CODOverdueDays   int
	CODBlockedAmount int64
	CODBlockedDays   int
}
