package order_status_changed

import "time"

// statusChangedEvent — полезная нагрузка события order.status.changed.
// Несет полный финансовый снапшот заказа, чтобы движок не ходил за
// ним во внешний сервис.
type statusChangedEvent struct {
	OrderID        string     `json:"order_id"`
	CustomerID     int64      `json:"customer_id"`
	RestaurantID   int64      `json:"restaurant_id"`
	RiderID        int64      `json:"rider_id"`
	Subtotal       int64      `json:"subtotal"`
	Discount       int64      `json:"discount"`
	TripDistanceKm float64    `json:"trip_distance_km"`
	PaymentMethod  string     `json:"payment_method"`
	CommissionRate float64    `json:"commission_rate"`
	HoldAmount     int64      `json:"hold_amount"`
	Status         string     `json:"status"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}
