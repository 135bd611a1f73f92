package order_placed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/service/intake"
	"fulfillment/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	intakeService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, intakeService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		intakeService:            intakeService,
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
				h.log.Info("order.placed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.placed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event placedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.placed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.GlobalID),
		logger.NewField("order_number", event.OrderNumber),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.placed processing")

	order, err := h.intakeService.Ingest(ctx, event.toOrder())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.placed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, intake.ErrDuplicateOrder):
			// повторная доставка сообщения, заказ уже принят
			msgLog.Info("order.placed handler skipping duplicate order")

		case errors.Is(err, intake.ErrInvalidOrder):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.placed handler invalid order payload")

		case errors.Is(err, intake.ErrTotalMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.placed handler order total mismatch")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.placed handler failed to ingest order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", order.GlobalID),
		logger.NewField("order_number", order.ID),
		logger.NewField("delivery_status", order.DeliveryStatus.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.placed: ingested")

	sess.MarkMessage(message, "")
	return false
}
