package handler

import (
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/model"
	"github.com/lendkeep/library-service/pkg/kafka"
)

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer wraps the producer. A nil producer disables the feed, Enqueue
// becomes a no-op so lending never depends on the broker being up.
func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	if q.producer == nil {
		return nil
	}
	data, err := jsonAPI.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

func (h *Handler) publishEvent(eventType, patronID string, bookID int64, detail string) {
	ev := model.LendingEvent{
		EventType:  eventType,
		PatronID:   patronID,
		BookID:     bookID,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	}
	if err := h.enqueuer.Enqueue(kafka.LendingTopic, ev); err != nil {
		h.log.Warn("enqueue lending event", zap.String("type", eventType), zap.Error(err))
	}
}
