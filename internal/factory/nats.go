package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/log"
)

func CreateNATSConn(conf config.NATS) (*nats.Conn, common.CloseFunc, error) {
	logger := log.Logger()

	opts := []nats.Option{
		nats.Name("pterobot"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, "nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.V(1).Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	}

	if conf.Creds.Token != "" {
		opts = append(opts, nats.Token(conf.Creds.Token))
	}

	ret, err := nats.Connect(conf.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	shutdown := func(context.Context) error {
		err := ret.Drain()
		if err != nil {
			ret.Close()

			return fmt.Errorf("failed to drain nats connection: %w", err)
		}

		return nil
	}

	return ret, shutdown, nil
}
