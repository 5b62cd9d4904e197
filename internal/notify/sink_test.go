package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/notify"
	"github.com/pterobot/pterobot/internal/notify/mock"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

func notification() entity.Notification {
	return entity.Notification{
		Change: entity.ChangeEvent{
			Server:     entity.Server{UUID: "0f0e0d0c-1111-2222-3333-444455556666", Name: "Survival", Node: "node-1"},
			Previous:   entity.StatusOnline,
			Current:    entity.StatusOffline,
			ObservedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		GuildID:   "guild-1",
		ChannelID: "channel-1",
	}
}

func restError(code int) error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: code},
	}
}

func TestDiscordSender(t *testing.T) {
	tcs := []struct {
		name      string
		sendErr   error
		expectErr bool
		retryable bool
	}{
		{name: "delivered"},
		{name: "rate limited", sendErr: restError(http.StatusTooManyRequests), expectErr: true, retryable: true},
		{name: "server error", sendErr: restError(http.StatusBadGateway), expectErr: true, retryable: true},
		{name: "missing access", sendErr: restError(http.StatusForbidden), expectErr: true},
		{name: "unknown channel", sendErr: restError(http.StatusNotFound), expectErr: true},
		{name: "transport error", sendErr: errors.New("connection reset"), expectErr: true, retryable: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock.NewMockEmbedSender(ctrl)

			session.EXPECT().
				ChannelMessageSendEmbed("channel-1", gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
					assert.Equal(t, "Server Status Change: Survival", embed.Title)
					assert.Equal(t, notify.ColorRed, embed.Color)

					return &discordgo.Message{}, tc.sendErr
				})

			err := notify.NewDiscordSender(session).Process(context.Background(), notification())

			if !tc.expectErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.retryable, errors.Is(err, pipeline.ErrRetryableError))

			assert.Equal(t, "discord_send", pipeline.AsProcessingError(err).Category)
		})
	}
}

func TestNATSPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock.NewMockMsgPublisher(ctrl)

	conn.EXPECT().
		PublishMsg(gomock.Any()).
		DoAndReturn(func(msg *nats.Msg) error {
			assert.Equal(t, "pterobot.status", msg.Subject)

			var event notify.Event
			require.NoError(t, json.Unmarshal(msg.Data, &event))

			assert.NotEmpty(t, event.ID)
			assert.Equal(t, event.ID, msg.Header.Get(nats.MsgIdHdr))
			assert.Equal(t, "0f0e0d0c-1111-2222-3333-444455556666", event.ServerID)
			assert.Equal(t, "Survival", event.ServerName)
			assert.Equal(t, "online", event.Previous)
			assert.Equal(t, "offline", event.Current)
			assert.Equal(t, "guild-1", event.GuildID)
			assert.Equal(t, "channel-1", event.ChannelID)

			return nil
		})

	conn.EXPECT().PublishMsg(gomock.Any()).Return(nats.ErrReconnectBufExceeded)
	conn.EXPECT().PublishMsg(gomock.Any()).Return(nats.ErrConnectionClosed)

	publisher := notify.NewNATSPublisher(conn, "pterobot.status")

	require.NoError(t, publisher.Process(context.Background(), notification()))

	err := publisher.Process(context.Background(), notification())
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrRetryableError)

	err = publisher.Process(context.Background(), notification())
	require.Error(t, err)
	assert.NotErrorIs(t, err, pipeline.ErrRetryableError)
}

func TestKafkaPublisher(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}

		if string(key) != "0f0e0d0c-1111-2222-3333-444455556666" {
			return errors.New("unexpected key " + string(key))
		}

		if msg.Topic != "pterobot-status" {
			return errors.New("unexpected topic " + msg.Topic)
		}

		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)
	producer.ExpectSendMessageAndFail(sarama.ErrMessageSizeTooLarge)

	publisher := notify.NewKafkaPublisher(producer, "pterobot-status")

	require.NoError(t, publisher.Process(context.Background(), notification()))

	err := publisher.Process(context.Background(), notification())
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrRetryableError)

	err = publisher.Process(context.Background(), notification())
	require.Error(t, err)
	assert.NotErrorIs(t, err, pipeline.ErrRetryableError)
}
