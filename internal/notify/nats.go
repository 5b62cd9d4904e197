package notify

import (
	"context"
	"errors"

	"github.com/nats-io/nats.go"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	categoryNATSPublish = "nats_publish"
)

// NATSPublisher publishes every notification as a json Event.
type NATSPublisher struct {
	conn    MsgPublisher
	subject string
}

func NewNATSPublisher(conn MsgPublisher, subject string) NATSPublisher {
	return NATSPublisher{
		conn:    conn,
		subject: subject,
	}
}

func (p NATSPublisher) Process(ctx context.Context, notification entity.Notification) error {
	event, data, err := marshalEvent(notification)
	if err != nil {
		return common.NewErrProcessingError(err, categoryNATSPublish, nil, "failed to build event")
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, event.ID)
	msg.Header.Set("Content-Type", "application/json")

	err = p.conn.PublishMsg(msg)
	if err != nil {
		if errors.Is(err, nats.ErrReconnectBufExceeded) || errors.Is(err, nats.ErrTimeout) {
			return common.NewRetryableErrProcessingError(err, categoryNATSPublish, nil, "failed to publish on %s", p.subject)
		}

		return common.NewErrProcessingError(err, categoryNATSPublish, nil, "failed to publish on %s", p.subject)
	}

	return nil
}
