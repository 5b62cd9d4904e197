package bot

import (
	"context"
	"net/url"

	"github.com/bwmarrin/discordgo"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_bot.go

type Panel interface {
	ListServers(ctx context.Context, filters url.Values) ([]entity.Document, error)
	GetServerDetails(ctx context.Context, id string) (entity.Document, error)
	GetServerResources(ctx context.Context, id string) (entity.Document, error)
	PowerAction(ctx context.Context, id string, action entity.PowerAction) error
}

type Resolver interface {
	Resolve(ctx context.Context, query string) ([]entity.Match, error)
}

// Settings is written by the admin commands.
type Settings interface {
	SetChannel(ctx context.Context, guildID, channelID string)
	GetAdminRole(ctx context.Context, guildID string) string
	SetAdminRole(ctx context.Context, guildID, roleID string)
}

// Responder is the part of *discordgo.Session used to answer interactions.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// CommandRegistrar is the part of *discordgo.Session used to publish slash commands.
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}
