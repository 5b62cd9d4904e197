package notify

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-logr/logr"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	categoryDiscordSend = "discord_send"
)

// DiscordSender posts one embed per notification.
type DiscordSender struct {
	session EmbedSender

	logger *logr.Logger
}

func NewDiscordSender(session EmbedSender) DiscordSender {
	return DiscordSender{session: session}
}

func (s DiscordSender) WithLogger(logger logr.Logger) DiscordSender {
	s.logger = &logger

	return s
}

func (s DiscordSender) Process(ctx context.Context, notification entity.Notification) error {
	embed := Render(notification.Change).Embed()

	_, err := s.session.ChannelMessageSendEmbed(notification.ChannelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		if isRetryable(err) {
			return common.NewRetryableErrProcessingError(err, categoryDiscordSend, nil, "failed to send to channel %s of guild %s", notification.ChannelID, notification.GuildID)
		}

		return common.NewErrProcessingError(err, categoryDiscordSend, nil, "failed to send to channel %s of guild %s", notification.ChannelID, notification.GuildID)
	}

	if s.logger != nil {
		s.logger.V(1).Info("Notification sent", "guild", notification.GuildID, "channel", notification.ChannelID, "server", notification.Change.Server.ID(), "status", notification.Change.Current)
	}

	return nil
}

// Rate limits and server errors are retryable, anything else (unknown channel, missing access) is not.
func isRetryable(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return !errors.Is(err, context.Canceled)
	}

	if restErr.Response == nil {
		return true
	}

	code := restErr.Response.StatusCode

	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
