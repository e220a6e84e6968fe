package wallet

import "settlement/internal/entities"

func ToRiderDomain(w *RiderWalletDB) *entities.RiderWallet {
	if w == nil {
		return nil
	}
	return &entities.RiderWallet{
		RiderID:           w.RiderID,
		CashCollected:     w.CashCollected,
		DeliveryEarnings:  w.DeliveryEarnings,
		Penalties:         w.Penalties,
		Bonuses:           w.Bonuses,
		AvailableWithdraw: w.AvailableWithdraw,
		TotalEarnings:     w.TotalEarnings,
		UpdatedAt:         w.UpdatedAt,
	}
}

func ToRestaurantDomain(w *RestaurantWalletDB) *entities.RestaurantWallet {
	if w == nil {
		return nil
	}
	return &entities.RestaurantWallet{
		RestaurantID:             w.RestaurantID,
		AvailableBalance:         w.AvailableBalance,
		PendingPayout:            w.PendingPayout,
		OnHoldAmount:             w.OnHoldAmount,
		TotalCommissionCollected: w.TotalCommissionCollected,
		TotalEarnings:            w.TotalEarnings,
		UpdatedAt:                w.UpdatedAt,
	}
}
