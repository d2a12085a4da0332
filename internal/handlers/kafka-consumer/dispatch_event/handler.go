package dispatch_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"fleet/internal/entities"
	jobcardservice "fleet/internal/service/jobcard"
	"fleet/pkg/logger"
)

// dispatchEventMessage - событие из внешней диспетчерской системы.
type dispatchEventMessage struct {
	JobNumber string `json:"job_number"`
	Action    string `json:"action"`
}

type Handler struct {
	jobCardService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, jobCardService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		jobCardService:           jobCardService,
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
				h.log.Info("dispatch.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("dispatch.events: session context done, exiting ConsumeClaim")
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

	var event dispatchEventMessage
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("dispatch.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("job_number", event.JobNumber),
		logger.NewField("action", event.Action),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("dispatch.events processing")

	err = h.jobCardService.ProcessDispatchEvent(ctx, entities.DispatchEvent{
		JobNumber: event.JobNumber,
		Action:    entities.DispatchActionType(event.Action),
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("dispatch.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, jobcardservice.ErrJobCardNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("dispatch.events handler unknown job number")

		case errors.Is(err, jobcardservice.ErrUndefinedAction):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("dispatch.events handler unknown action")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("dispatch.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("dispatch.events: processed")

	sess.MarkMessage(message, "")
	return false
}
