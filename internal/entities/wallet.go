package entities

import "time"

// RiderWallet — кэш баланса курьера поверх журнала транзакций.
// Инвариант: TotalEarnings = DeliveryEarnings + Bonuses - Penalties.
type RiderWallet struct {
	RiderID           int64
	CashCollected     int64
	DeliveryEarnings  int64
	Penalties         int64
	Bonuses           int64
	AvailableWithdraw int64
	TotalEarnings     int64
	UpdatedAt         time.Time
}

// RestaurantWallet — кэш баланса ресторана поверх журнала транзакций.
type RestaurantWallet struct {
	RestaurantID             int64
	AvailableBalance         int64
	PendingPayout            int64
	OnHoldAmount             int64
	TotalCommissionCollected int64
	TotalEarnings            int64
	UpdatedAt                time.Time
}

// RiderWalletCredit — инкременты, применяемые к кошельку курьера
// в рамках settlement одного заказа.
type RiderWalletCredit struct {
	DeliveryEarnings  int64
	AvailableWithdraw int64
	CashCollected     int64
}

// RiderWalletTotals — пересчитанные с нуля значения кошелька,
// которыми reconciliation перезаписывает кэш.
type RiderWalletTotals struct {
	CashCollected     int64
	DeliveryEarnings  int64
	Penalties         int64
	Bonuses           int64
	AvailableWithdraw int64
	TotalEarnings     int64
}

type RestaurantWalletTotals struct {
	AvailableBalance         int64
	TotalCommissionCollected int64
	TotalEarnings            int64
}
