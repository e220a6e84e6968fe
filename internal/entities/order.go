package entities

import "time"

type Order struct {
	ID           string
	CustomerID   int64
	RestaurantID int64
	RiderID      int64

	Subtotal       int64
	Discount       int64
	TripDistanceKm float64
	PaymentMethod  PaymentMethodType
	CommissionRate float64
	HoldAmount     int64

	// Расчетные поля, заполняются движком при settlement
	DeliveryFee       int64
	CommissionAmount  int64
	RestaurantEarning int64
	RiderEarning      int64
	PlatformRevenue   int64
	GatewayFee        int64
	TotalPrice        int64

	Status      OrderStatusType
	CreatedAt   time.Time
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	SettledAt   *time.Time
}

func (o *Order) IsSettled() bool {
	return o.SettledAt != nil
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAccepted  OrderStatusType = "accepted"
	OrderPreparing OrderStatusType = "preparing"
	OrderReady     OrderStatusType = "ready"
	OrderOnTheWay  OrderStatusType = "on_the_way"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentMethodType string

const (
	PaymentCOD     PaymentMethodType = "cod"
	PaymentPrepaid PaymentMethodType = "prepaid"
)

func (p PaymentMethodType) String() string {
	return string(p)
}

type OrderModify struct {
	ID             *string
	CustomerID     *int64
	RestaurantID   *int64
	RiderID        *int64
	Subtotal       *int64
	Discount       *int64
	TripDistanceKm *float64
	PaymentMethod  *PaymentMethodType
	CommissionRate *float64
	HoldAmount     *int64
	Status         *OrderStatusType
	CreatedAt      *time.Time
}

// OrderSettlementUpdate содержит расчетные поля, записываемые на заказ
// одновременно с settlement-маркером.
type OrderSettlementUpdate struct {
	DeliveryFee       int64
	CommissionAmount  int64
	RestaurantEarning int64
	RiderEarning      int64
	PlatformRevenue   int64
	GatewayFee        int64
	TotalPrice        int64
	SettledAt         time.Time
}
