package notify

import (
	"context"
	"errors"

	"github.com/IBM/sarama"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	categoryKafkaProduce = "kafka_produce"
)

// KafkaPublisher produces every notification as a json Event keyed by server id,
// so that the changes of a server stay ordered.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) KafkaPublisher {
	return KafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (p KafkaPublisher) Process(ctx context.Context, notification entity.Notification) error {
	event, data, err := marshalEvent(notification)
	if err != nil {
		return common.NewErrProcessingError(err, categoryKafkaProduce, nil, "failed to build event")
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ServerID),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.ID)},
		},
		Timestamp: event.ObservedAt,
	}

	_, _, err = p.producer.SendMessage(msg)
	if err != nil {
		if isRetryableKafka(err) {
			return common.NewRetryableErrProcessingError(err, categoryKafkaProduce, nil, "failed to produce on %s", p.topic)
		}

		return common.NewErrProcessingError(err, categoryKafkaProduce, nil, "failed to produce on %s", p.topic)
	}

	return nil
}

func isRetryableKafka(err error) bool {
	var kErr sarama.KError
	if errors.As(err, &kErr) {
		switch kErr {
		case sarama.ErrNotLeaderForPartition, sarama.ErrLeaderNotAvailable, sarama.ErrRequestTimedOut, sarama.ErrNotEnoughReplicas, sarama.ErrNetworkException:
			return true
		}

		return false
	}

	return errors.Is(err, sarama.ErrOutOfBrokers)
}
