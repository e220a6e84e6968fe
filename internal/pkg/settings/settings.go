package settings

import (
	"settlement/internal/entities"
	"settlement/internal/pkg/config"
)

// Source выдает снапшот настроек settlement. Снапшот резолвится один раз
// на операцию и дальше передается по значению, чтобы смена настроек
// посреди расчета не могла дать несогласованный сплит.
type Source struct {
	cfg config.Settlement
}

func New(cfg *config.Config) *Source {
	return &Source{
		cfg: cfg.Settlement,
	}
}

func (s *Source) Snapshot() entities.SettlementConfig {
	return entities.SettlementConfig{
		DefaultCommissionRate: s.cfg.DefaultCommissionRate,
		RiderBasePay:          s.cfg.RiderBasePay,
		RiderPerKmRate:        s.cfg.RiderPerKmRate,
		RiderEarningCap:       s.cfg.RiderEarningCap,
		FallbackDistanceKm:    s.cfg.FallbackDistanceKm,
		GatewayFeePercent:     s.cfg.GatewayFeePercent,
		BonusTargetDeliveries: s.cfg.BonusTargetDeliveries,
		BonusAmount:           s.cfg.BonusAmount,
		CODOverdueAmount:      s.cfg.CODOverdueAmount,
		CODOverdueDays:        s.cfg.CODOverdueDays,
		CODBlockedAmount:      s.cfg.CODBlockedAmount,
		CODBlockedDays:        s.cfg.CODBlockedDays,
	}
}
