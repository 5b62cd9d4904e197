package cmd

import (
	"fmt"
	"os"

	"github.com/prometheus/common/version"
	"github.com/spf13/cobra"

	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/log"
)

var (
	cfgFile string

	conf *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pterobot",
	Short: "Discord bot managing the servers of a Pterodactyl panel",
	Long: `pterobot answers slash commands to inspect and control the servers of a Pterodactyl panel,
and notifies the configured channels when the state of a server changes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

// loadConfig parses the configuration and initializes the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error

	conf, err = config.Parse(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", cfgFile, err)
	}

	// Init logger
	err = log.Init(conf.Logs)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	logger := log.Logger()

	// Dump generic information
	logger.V(1).Info("Starting pterobot",
		"command", cmd.Name(),
		"version", version.Info(),
		"buildContext", version.BuildContext(),
	)
	logger.V(1).Info("Using config", "config", fmt.Sprintf("%+v", *conf))

	return nil
}
