// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// cancelCmd and releaseCmd close the selected campaign. Authorization is
// checked by the contract; non-admins see its rejection message.
var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the selected campaign (admin)",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.settleAction("canceling the campaign", a.actions.CancelCampaign(cmd.Context()))
	}),
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Release the selected campaign's funds to its recipient (admin)",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.settleAction("releasing funds", a.actions.ReleaseFunds(cmd.Context()))
	}),
}

func init() {
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(releaseCmd)
}
