package rider_payout

import (
	"math"

	"settlement/internal/entities"
)

// PayoutFactory вычисляет оплату курьера и стоимость доставки по дистанции.
// Потолок применяется внутри единственной точки расчета: значение выше
// cap структурно не может покинуть фабрику и попасть в БД.
type PayoutFactory struct{}

func New() *PayoutFactory {
	return &PayoutFactory{}
}

// RiderEarning возвращает оплату курьера за поездку: min(round(base + rate*d), cap).
// Нулевая или отрицательная дистанция означает отсутствие координат —
// подставляем фиксированную fallback-дистанцию вместо ошибки.
func (f *PayoutFactory) RiderEarning(distanceKm float64, cfg entities.SettlementConfig) int64 {
	d := distanceKm
	if d <= 0 || math.IsNaN(d) {
		d = cfg.FallbackDistanceKm
	}

	earning := int64(math.Round(float64(cfg.RiderBasePay) + float64(cfg.RiderPerKmRate)*d))
	if earning > cfg.RiderEarningCap {
		return cfg.RiderEarningCap
	}
	if earning < cfg.RiderBasePay {
		return cfg.RiderBasePay
	}
	return earning
}

// DeliveryFee — то, что платит клиент за доставку. Совпадает с оплатой
// курьера: платформа не удерживает маржу с доставки на этом слое.
func (f *PayoutFactory) DeliveryFee(distanceKm float64, cfg entities.SettlementConfig) int64 {
	return f.RiderEarning(distanceKm, cfg)
}
