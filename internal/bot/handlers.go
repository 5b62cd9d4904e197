package bot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/panel"
	"github.com/pterobot/pterobot/internal/resolver"
)

const (
	maxListedMatches = 10
)

var ErrUnknownSubcommand = errors.New("unknown subcommand")

func (b Bot) help(ctx context.Context, i *discordgo.Interaction, r *reply) error {
	return r.Embed(helpEmbed(b.clock.Now()))
}

func (b Bot) list(ctx context.Context, i *discordgo.Interaction, r *reply) error {
	err := r.Defer()
	if err != nil {
		return err
	}

	servers, err := b.listServers(ctx)
	if err != nil {
		b.logError(err, "Failed to list servers")

		return r.Text("Error fetching server list: " + err.Error())
	}

	if len(servers) == 0 {
		return r.Text("No servers found or no access via API.")
	}

	embed, components := listPage(servers, 0, userID(i), b.clock.Now())

	return r.Send("", []*discordgo.MessageEmbed{embed}, components)
}

// page answers the prev/next buttons of a server list. Pages are rebuilt from a fresh listing.
func (b Bot) page(ctx context.Context, i *discordgo.Interaction, r *reply) error {
	page, ownerID, ok := parseListCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return nil
	}

	if ownerID != userID(i) {
		return r.Ephemeral("These buttons are not for you.")
	}

	servers, err := b.listServers(ctx)
	if err != nil {
		return err
	}

	if len(servers) == 0 {
		return r.Ephemeral("No servers found or no access via API.")
	}

	embed, components := listPage(servers, page, ownerID, b.clock.Now())

	return r.Update([]*discordgo.MessageEmbed{embed}, components)
}

func (b Bot) listServers(ctx context.Context) ([]entity.Server, error) {
	docs, err := b.panel.ListServers(ctx, nil)
	if err != nil {
		return nil, err
	}

	ret := make([]entity.Server, 0, len(docs))
	for _, doc := range docs {
		ret = append(ret, panel.Normalize(doc))
	}

	return ret, nil
}

func (b Bot) info(ctx context.Context, i *discordgo.Interaction, r *reply) error {
	err := r.Defer()
	if err != nil {
		return err
	}

	query := strings.TrimSpace(stringOption(i.ApplicationCommandData().Options, optionQuery))
	if query == "" {
		return r.Text("Please provide a UUID or partial server name.")
	}

	matches, err := b.resolver.Resolve(ctx, query)
	if err != nil {
		b.logError(err, "Failed to resolve server", "query", query)

		return r.Text("Error fetching server info: " + err.Error())
	}

	matches = resolver.Dedupe(matches)

	var id, uuid string

	switch {
	case len(matches) == 1:
		id, uuid = resolver.Keys(matches[0])
	case len(matches) > 1:
		return r.Text(ambiguousMatches(query, matches))
	case resolver.LooksLikeIdentifier(query):
		id, uuid = query, query
	default:
		return r.Text("No server found matching: " + query)
	}

	details := b.details(ctx, id, uuid)

	var resources entity.Document

	if uuid != "" {
		resources, err = b.panel.GetServerResources(ctx, uuid)
		if err != nil {
			b.logError(err, "Failed to fetch resources", "uuid", uuid)
		}
	}

	if details == nil && resources == nil {
		return r.Text(fmt.Sprintf("Could not fetch info for server %s.", uuid))
	}

	server := panel.Normalize(details)

	var usage *entity.Resources

	if resources != nil {
		parsed := panel.ParseResources(resources)
		usage = &parsed

		// live state wins over the state stored by the panel
		if parsed.State != "" && parsed.State != entity.StatusUnknown {
			server.Status = parsed.State
		}
	}

	return r.Embed(infoEmbed(server, uuid, usage))
}

// details looks the server up by numeric id first, then by uuid.
func (b Bot) details(ctx context.Context, id, uuid string) entity.Document {
	keys := []string{id}
	if uuid != id {
		keys = append(keys, uuid)
	}

	for _, key := range keys {
		if key == "" {
			continue
		}

		ret, err := b.panel.GetServerDetails(ctx, key)
		if err == nil {
			return ret
		}

		b.logError(err, "Failed to fetch details", "id", key)
	}

	return nil
}

func ambiguousMatches(query string, matches []entity.Match) string {
	lines := make([]string, 0, maxListedMatches)

	for _, m := range matches[:min(len(matches), maxListedMatches)] {
		server := panel.Normalize(m.Raw)
		_, uuid := resolver.Keys(m)

		lines = append(lines, fmt.Sprintf("%s - %s", server.Name, uuid))
	}

	return fmt.Sprintf("Multiple servers match %q. Example:\n%s\nPlease specify the UUID.", query, strings.Join(lines, "\n"))
}

func (b Bot) power(ctx context.Context, i *discordgo.Interaction, r *reply) error {
	data := i.ApplicationCommandData()
	action := entity.PowerAction(strings.TrimPrefix(data.Name, "ptero-"))
	uuid := strings.TrimSpace(stringOption(data.Options, optionUUID))

	err := r.Defer()
	if err != nil {
		return err
	}

	err = b.panel.PowerAction(ctx, uuid, action)
	if err != nil {
		b.logError(err, "Power action failed", "action", action, "uuid", uuid)

		return r.Embed(errorEmbed(fmt.Sprintf("Failed to %s server `%s`.\n`%s`", action, uuid, err.Error())))
	}

	b.logInfo(0, "Power action sent", "action", action, "uuid", uuid, "user", userID(i))

	return r.Embed(powerEmbed(action, uuid))
}

func (b Bot) monitor(ctx context.Context, i *discordgo.Interaction, r *reply) error {
	data := i.ApplicationCommandData()

	sub := subcommand(data.Options)
	if sub == nil || sub.Name != subcommandSetChannel {
		return fmt.Errorf("%w for %s", ErrUnknownSubcommand, data.Name)
	}

	if i.GuildID == "" {
		return r.Ephemeral("This command is only available in a server.")
	}

	channelID := stringOption(sub.Options, optionChannel)

	if data.Resolved != nil {
		if channel, ok := data.Resolved.Channels[channelID]; ok && !slices.Contains(textChannelTypes, channel.Type) {
			return r.Ephemeral("Please select a text channel.")
		}
	}

	b.settings.SetChannel(ctx, i.GuildID, channelID)

	return r.Embed(confirmEmbed(
		"Monitoring Configured",
		fmt.Sprintf("Status notifications for this server will now be sent to <#%s>.", channelID),
	))
}

func (b Bot) admin(ctx context.Context, i *discordgo.Interaction, r *reply) error {
	data := i.ApplicationCommandData()

	sub := subcommand(data.Options)
	if sub == nil || sub.Name != subcommandSetRole {
		return fmt.Errorf("%w for %s", ErrUnknownSubcommand, data.Name)
	}

	if i.GuildID == "" {
		return r.Ephemeral("This command is only available in a server.")
	}

	roleID := stringOption(sub.Options, optionRole)

	b.settings.SetAdminRole(ctx, i.GuildID, roleID)

	return r.Embed(confirmEmbed(
		"Admin Role Configured",
		fmt.Sprintf("The role <@&%s> has been granted bot admin permissions.", roleID),
	))
}

func subcommand(options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			return opt
		}
	}

	return nil
}

// stringOption returns the raw value of a string, channel or role option.
func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name != name {
			continue
		}

		value, _ := opt.Value.(string)

		return value
	}

	return ""
}
