// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

var donateCmd = &cobra.Command{
	Use:   "donate <amount>",
	Short: "Donate ETH to the selected campaign",
	Long: `The donate command sends the given amount of ETH to the campaign selected with
'charity campaigns view <id>'.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.settleAction("donating", a.actions.Donate(cmd.Context(), args[0]))
	}),
}

func init() {
	rootCmd.AddCommand(donateCmd)
}
