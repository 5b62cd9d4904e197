package cmd

import (
	"context"
	"fmt"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/factory"
	"github.com/pterobot/pterobot/internal/panel"
)

var nameFilter string

var serversCmd = &cobra.Command{
	Use:     "servers",
	Short:   "Print the normalized server list of the panel",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := factory.CreatePanelClient(config.PanelConfig())
		if !client.Configured() {
			return panel.ErrNotConfigured
		}

		var filters url.Values
		if nameFilter != "" {
			filters = url.Values{"filter[name]": []string{nameFilter}}
		}

		docs, err := client.ListServers(context.Background(), filters)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTIFIER\tUUID\tNAME\tSTATUS\tNODE\tOWNER")

		for _, doc := range docs {
			server := panel.Normalize(doc)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				dash(server.Identifier), dash(server.UUID), dash(server.Name), server.Status, dash(server.Node), dash(server.Owner))
		}

		return w.Flush()
	},
}

func dash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

func init() {
	serversCmd.Flags().StringVar(&nameFilter, "name", "", "only list servers whose name matches")

	rootCmd.AddCommand(serversCmd)
}
