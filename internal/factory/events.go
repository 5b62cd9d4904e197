package factory

import (
	"context"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/notify"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

// CreateEventSinks connects the configured change-event sinks. Sinks without url are skipped.
func CreateEventSinks(conf config.Events) ([]pipeline.Processing[entity.Notification], common.CloseFunc, error) {
	var (
		sinks   []pipeline.Processing[entity.Notification]
		closers []common.CloseFunc
	)

	closeAll := func(ctx context.Context) error {
		return common.CloseAll(ctx, closers...)
	}

	if conf.NATS.URL != "" {
		conn, closeFunc, err := CreateNATSConn(conf.NATS)
		if err != nil {
			return nil, nil, err
		}

		closers = append(closers, closeFunc)
		sinks = append(sinks, notify.NewNATSPublisher(conn, conf.NATS.Subject))
	}

	if conf.Kafka.Broker.URLs != "" {
		producer, closeFunc, err := CreateKafkaProducer(conf.Kafka)
		if err != nil {
			_ = closeAll(context.Background())

			return nil, nil, err
		}

		closers = append(closers, closeFunc)
		sinks = append(sinks, notify.NewKafkaPublisher(producer, conf.Kafka.Topic))
	}

	return sinks, closeAll, nil
}
