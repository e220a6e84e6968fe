package order

import "time"

type OrderDB struct {
	ID             string
	CustomerID     int64
	RestaurantID   int64
	RiderID        int64
	Subtotal       int64
	Discount       int64
	TripDistanceKm float64
	PaymentMethod  string
	CommissionRate float64
	HoldAmount     int64

	DeliveryFee       int64
	CommissionAmount  int64
	RestaurantEarning int64
	RiderEarning      int64
	PlatformRevenue   int64
	GatewayFee        int64
	TotalPrice        int64

	Status      string
	CreatedAt   time.Time
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	SettledAt   *time.Time
}

type RiderSettledOrderDB struct {
	ID             string
	TripDistanceKm float64
	PaymentMethod  string
	RiderEarning   int64
}
