package wallet

import "time"

type RiderWalletDB struct {
	RiderID           int64
	CashCollected     int64
	DeliveryEarnings  int64
	Penalties         int64
	Bonuses           int64
	AvailableWithdraw int64
	TotalEarnings     int64
	UpdatedAt         time.Time
}

type RestaurantWalletDB struct {
	RestaurantID             int64
	AvailableBalance         int64
	PendingPayout            int64
	OnHoldAmount             int64
	TotalCommissionCollected int64
	TotalEarnings            int64
	UpdatedAt                time.Time
}
