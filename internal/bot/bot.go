package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-logr/logr"
	"github.com/jonboulle/clockwork"
)

const (
	interactionTimeout = 30 * time.Second

	msgUnauthorized = "You are not authorized to perform this action."
	msgFailure      = "Error executing command."
)

var ErrUnknownCommand = errors.New("unknown command")

type command struct {
	admin  bool
	handle func(b Bot, ctx context.Context, i *discordgo.Interaction, r *reply) error
}

var commands = map[string]command{
	CommandHelp:    {admin: false, handle: Bot.help},
	CommandList:    {admin: true, handle: Bot.list},
	CommandInfo:    {admin: true, handle: Bot.info},
	CommandStart:   {admin: true, handle: Bot.power},
	CommandStop:    {admin: true, handle: Bot.power},
	CommandRestart: {admin: true, handle: Bot.power},
	CommandKill:    {admin: true, handle: Bot.power},
	CommandMonitor: {admin: true, handle: Bot.monitor},
	CommandAdmin:   {admin: true, handle: Bot.admin},
}

// Bot dispatches slash commands and list pagination buttons.
type Bot struct {
	responder Responder
	panel     Panel
	resolver  Resolver
	settings  Settings
	auth      Authorizer
	clock     clockwork.Clock

	logger *logr.Logger
}

func New(responder Responder, panel Panel, resolver Resolver, settings Settings, auth Authorizer, clock clockwork.Clock) Bot {
	return Bot{
		responder: responder,
		panel:     panel,
		resolver:  resolver,
		settings:  settings,
		auth:      auth,
		clock:     clock,
	}
}

func (b Bot) WithLogger(logger logr.Logger) Bot {
	b.logger = &logger

	return b
}

// Register subscribes the bot to the interactions received by session.
// Every interaction is handled with a context derived from ctx.
func (b Bot) Register(ctx context.Context, session *discordgo.Session) func() {
	return session.AddHandler(func(_ *discordgo.Session, event *discordgo.InteractionCreate) {
		b.HandleInteraction(ctx, event.Interaction)
	})
}

func (b Bot) HandleInteraction(ctx context.Context, i *discordgo.Interaction) {
	ctx, cancel := context.WithTimeout(ctx, interactionTimeout)
	defer cancel()

	r := &reply{responder: b.responder, interaction: i}

	var err error

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = b.dispatch(ctx, i, r)
	case discordgo.InteractionMessageComponent:
		err = b.page(ctx, i, r)
	default:
		return
	}

	if err == nil {
		return
	}

	b.logError(err, "Interaction failed", "guild", i.GuildID, "user", userID(i))

	err = r.Fail(msgFailure)
	if err != nil {
		b.logError(err, "Failed to reply to interaction error")
	}
}

func (b Bot) dispatch(ctx context.Context, i *discordgo.Interaction, r *reply) error {
	name := i.ApplicationCommandData().Name

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	b.logInfo(1, "Command received", "command", name, "guild", i.GuildID, "user", userID(i))

	if cmd.admin && !b.auth.Authorized(ctx, i) {
		return r.Ephemeral(msgUnauthorized)
	}

	return cmd.handle(b, ctx, i, r)
}

func (b Bot) logInfo(level int, msg string, keysAndValues ...any) {
	if b.logger == nil {
		return
	}

	b.logger.V(level).Info(msg, keysAndValues...)
}

func (b Bot) logError(err error, msg string, keysAndValues ...any) {
	if b.logger == nil {
		return
	}

	b.logger.Error(err, msg, keysAndValues...)
}

// reply tracks whether the interaction has already been acknowledged:
// Discord accepts a single initial response, later ones are edits.
type reply struct {
	responder   Responder
	interaction *discordgo.Interaction

	acknowledged bool
}

// Defer acknowledges the interaction, the answer follows within 15 minutes.
func (r *reply) Defer() error {
	err := r.responder.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to defer reply: %w", err)
	}

	r.acknowledged = true

	return nil
}

func (r *reply) Send(content string, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	if !r.acknowledged {
		err := r.responder.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content:    content,
				Embeds:     embeds,
				Components: components,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to reply: %w", err)
		}

		r.acknowledged = true

		return nil
	}

	edit := &discordgo.WebhookEdit{
		Content: &content,
	}

	if embeds != nil {
		edit.Embeds = &embeds
	}

	if components != nil {
		edit.Components = &components
	}

	_, err := r.responder.InteractionResponseEdit(r.interaction, edit)
	if err != nil {
		return fmt.Errorf("failed to edit reply: %w", err)
	}

	return nil
}

func (r *reply) Text(content string) error {
	return r.Send(content, nil, nil)
}

func (r *reply) Embed(embed *discordgo.MessageEmbed) error {
	return r.Send("", []*discordgo.MessageEmbed{embed}, nil)
}

// Ephemeral answers with a message only visible to the caller. Once acknowledged, it is a plain edit.
func (r *reply) Ephemeral(content string) error {
	if r.acknowledged {
		return r.Text(content)
	}

	err := r.responder.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to reply: %w", err)
	}

	r.acknowledged = true

	return nil
}

// Update replaces the message carrying the clicked component.
func (r *reply) Update(embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	err := r.responder.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: components,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}

	r.acknowledged = true

	return nil
}

func (r *reply) Fail(content string) error {
	return r.Ephemeral(content)
}
