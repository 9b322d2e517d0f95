package cmd

import (
	"github.com/spf13/cobra"

	"charity/cli/internal/ui"
)

// whoamiCmd shows the connected account, its balance and, for admins, the
// admin tools.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me", "account"},
	Short:   "Show the connected account and its balance",
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.router.show(cmd.Context(), ui.PageLanding)
	}),
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
