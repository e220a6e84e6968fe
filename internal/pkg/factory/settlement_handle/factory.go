package settlement_handle

import (
	"context"
	"errors"
	"fmt"

	"settlement/internal/entities"
	"settlement/internal/service/order"
	"settlement/internal/service/settlement"
)

// StatusHandlerFactory выбирает финансовую реакцию на терминальный
// статус заказа: доставлен — расчет, отменен — возврат.
type StatusHandlerFactory struct {
	settlementService order.SettlementService
}

func NewStatusHandlerFactory(settlementService order.SettlementService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		settlementService: settlementService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, orderID string) error {
	_, err := f.settlementService.Settle(ctx, orderID)
	if err != nil {
		// повторная доставка события — расчет уже проведен
		if errors.Is(err, settlement.ErrAlreadySettled) {
			return nil
		}
		return fmt.Errorf("settle delivered order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	_, err := f.settlementService.Cancel(ctx, orderID)
	if err != nil {
		if errors.Is(err, settlement.ErrAlreadyCancelled) {
			return nil
		}
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return nil
}
