package notify

import (
	"github.com/bwmarrin/discordgo"
	"github.com/nats-io/nats.go"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_notify.go

// EmbedSender is the part of *discordgo.Session used to deliver notifications.
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// MsgPublisher is the part of *nats.Conn used by NATSPublisher.
type MsgPublisher interface {
	PublishMsg(msg *nats.Msg) error
}
