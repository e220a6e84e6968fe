package order

import "settlement/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		RestaurantID:      o.RestaurantID,
		RiderID:           o.RiderID,
		Subtotal:          o.Subtotal,
		Discount:          o.Discount,
		TripDistanceKm:    o.TripDistanceKm,
		PaymentMethod:     entities.PaymentMethodType(o.PaymentMethod),
		CommissionRate:    o.CommissionRate,
		HoldAmount:        o.HoldAmount,
		DeliveryFee:       o.DeliveryFee,
		CommissionAmount:  o.CommissionAmount,
		RestaurantEarning: o.RestaurantEarning,
		RiderEarning:      o.RiderEarning,
		PlatformRevenue:   o.PlatformRevenue,
		GatewayFee:        o.GatewayFee,
		TotalPrice:        o.TotalPrice,
		Status:            entities.OrderStatusType(o.Status),
		CreatedAt:         o.CreatedAt,
		AcceptedAt:        o.AcceptedAt,
		PickedUpAt:        o.PickedUpAt,
		DeliveredAt:       o.DeliveredAt,
		CancelledAt:       o.CancelledAt,
		SettledAt:         o.SettledAt,
	}
}

func ToRiderSettledDomain(o *RiderSettledOrderDB) entities.RiderSettledOrder {
	return entities.RiderSettledOrder{
		ID:             o.ID,
		TripDistanceKm: o.TripDistanceKm,
		PaymentMethod:  entities.PaymentMethodType(o.PaymentMethod),
		RiderEarning:   o.RiderEarning,
	}
}
