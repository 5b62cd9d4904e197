package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pterobot/pterobot/internal/bot"
	"github.com/pterobot/pterobot/internal/factory"
	"github.com/pterobot/pterobot/internal/log"
)

var guildID string

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Manage the slash commands published on Discord",
}

var syncCmd = &cobra.Command{
	Use:     "sync",
	Short:   "Publish the slash commands, globally or on a single guild",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Logger()

		session, err := factory.CreateDiscordSession(conf.Discord)
		if err != nil {
			return err
		}

		guild := targetGuild()

		logger.Info("Refreshing application commands", "guild", guild)

		created, err := bot.Sync(session, conf.Discord.ClientID, guild)
		if err != nil {
			return err
		}

		for _, command := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "/%s\t%s\n", command.Name, command.ID)
		}

		logger.Info("Successfully reloaded application commands", "count", len(created))

		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove every slash command, globally or on a single guild",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Logger()

		session, err := factory.CreateDiscordSession(conf.Discord)
		if err != nil {
			return err
		}

		guild := targetGuild()

		logger.Info("Deleting application commands", "guild", guild)

		err = bot.Delete(session, conf.Discord.ClientID, guild)
		if err != nil {
			return err
		}

		logger.Info("Successfully deleted application commands")

		return nil
	},
}

// targetGuild returns the --guild flag, falling back to the configured guild.
func targetGuild() string {
	if guildID != "" {
		return guildID
	}

	return conf.Discord.GuildID
}

func init() {
	commandsCmd.PersistentFlags().StringVar(&guildID, "guild", "", "guild id, commands are global when empty")

	commandsCmd.AddCommand(syncCmd, deleteCmd)
	rootCmd.AddCommand(commandsCmd)
}
