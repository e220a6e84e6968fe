package order

import (
	"context"
	"errors"
	"fmt"

	"settlement/internal/entities"
)

type Service struct {
	repository    Repository
	statusFactory HandlerFactory
}

func New(repository Repository, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange фиксирует снапшот заказа из события и
// запускает финансовую реакцию на новый статус. Статусы без реакции
// (принят, готовится, в пути) только обновляют снапшот.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required: %w", ErrMissingRequiredFields)
	}

	order, err := s.repository.Upsert(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("upsert order: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}
