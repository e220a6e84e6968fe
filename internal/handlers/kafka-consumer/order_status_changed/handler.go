package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"settlement/internal/entities"
	orderservice "settlement/internal/service/order"
	"settlement/internal/service/settlement"
	"settlement/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim: при отмене
// контекста или временной ошибке расчета сообщение остается
// незакоммиченным и будет обработано заново в новой сессии.
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		eventsProcessed.WithLabelValues("unknown", "bad_message").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	order, err := h.orderService.ProcessOrderStatusChange(ctx, toOrderModify(event))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler unknown status for order")
			eventsProcessed.WithLabelValues(event.Status, "skipped").Inc()

		case errors.Is(err, settlement.ErrInvalidOrderState):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler order in conflicting state")
			eventsProcessed.WithLabelValues(event.Status, "conflict").Inc()

		case errors.Is(err, settlement.ErrRiderNotAssigned):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler delivered order without rider")
			eventsProcessed.WithLabelValues(event.Status, "no_rider").Inc()

		default:
			// денежная проводка не прошла по временной причине — оффсет
			// не коммитим, сессия перезапустится и сообщение придет снова
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.status.changed handler failed to process order, message will be redelivered")
			eventsProcessed.WithLabelValues(event.Status, "retry").Inc()
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.status.changed: processed")
	eventsProcessed.WithLabelValues(event.Status, "ok").Inc()

	sess.MarkMessage(message, "")
	return false
}

func toOrderModify(event statusChangedEvent) entities.OrderModify {
	status := entities.OrderStatusType(event.Status)
	paymentMethod := entities.PaymentMethodType(event.PaymentMethod)

	return entities.OrderModify{
		ID:             &event.OrderID,
		CustomerID:     &event.CustomerID,
		RestaurantID:   &event.RestaurantID,
		RiderID:        &event.RiderID,
		Subtotal:       &event.Subtotal,
		Discount:       &event.Discount,
		TripDistanceKm: &event.TripDistanceKm,
		PaymentMethod:  &paymentMethod,
		CommissionRate: &event.CommissionRate,
		HoldAmount:     &event.HoldAmount,
		Status:         &status,
		CreatedAt:      event.CreatedAt,
	}
}
