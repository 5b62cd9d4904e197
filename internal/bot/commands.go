package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	CommandHelp    = "help"
	CommandList    = "ptero-list"
	CommandInfo    = "ptero-info"
	CommandStart   = "ptero-start"
	CommandStop    = "ptero-stop"
	CommandRestart = "ptero-restart"
	CommandKill    = "ptero-kill"
	CommandMonitor = "ptero-monitor"
	CommandAdmin   = "ptero-admin"

	subcommandSetChannel = "set-channel"
	subcommandSetRole    = "set-role"

	optionQuery   = "query"
	optionUUID    = "uuid"
	optionChannel = "channel"
	optionRole    = "role"
)

var administrator int64 = discordgo.PermissionAdministrator

// Definitions returns the slash commands published by Sync.
func Definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandHelp,
			Description: "Displays the list of available commands",
		},
		{
			Name:        CommandList,
			Description: "Lists all Pterodactyl servers accessible via the API",
		},
		{
			Name:        CommandInfo,
			Description: "Displays detailed information for a Pterodactyl server (UUID or partial name)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionQuery,
					Description: "UUID or partial name of the Pterodactyl server",
					Required:    true,
				},
			},
		},
		powerDefinition(CommandStart, "Start a Pterodactyl server"),
		powerDefinition(CommandStop, "Stop a Pterodactyl server"),
		powerDefinition(CommandRestart, "Restart a Pterodactyl server"),
		powerDefinition(CommandKill, "Kill a Pterodactyl server"),
		{
			Name:                     CommandMonitor,
			Description:              "Configure server status monitoring",
			DefaultMemberPermissions: &administrator,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSetChannel,
					Description: "Set the channel for status notifications",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         optionChannel,
							Description:  "The channel to send notifications to",
							Required:     true,
							ChannelTypes: textChannelTypes,
						},
					},
				},
			},
		},
		{
			Name:                     CommandAdmin,
			Description:              "Configure admin permissions for the bot",
			DefaultMemberPermissions: &administrator,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSetRole,
					Description: "Set the role that can use bot admin commands",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        optionRole,
							Description: "The role to grant admin permissions",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

var textChannelTypes = []discordgo.ChannelType{
	discordgo.ChannelTypeGuildText,
	discordgo.ChannelTypeGuildNews,
}

func powerDefinition(name, description string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionUUID,
				Description: "Pterodactyl Server UUID",
				Required:    true,
			},
		},
	}
}

// Sync replaces the published commands of appID with Definitions.
// An empty guildID publishes them globally.
func Sync(registrar CommandRegistrar, appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
	ret, err := registrar.ApplicationCommandBulkOverwrite(appID, guildID, Definitions())
	if err != nil {
		return nil, fmt.Errorf("failed to sync commands: %w", err)
	}

	return ret, nil
}

// Delete removes every published command of appID.
func Delete(registrar CommandRegistrar, appID, guildID string) error {
	_, err := registrar.ApplicationCommandBulkOverwrite(appID, guildID, []*discordgo.ApplicationCommand{})
	if err != nil {
		return fmt.Errorf("failed to delete commands: %w", err)
	}

	return nil
}
