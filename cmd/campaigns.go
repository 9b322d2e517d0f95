// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"charity/cli/internal/ui"
)

var campaignsCmd = &cobra.Command{
	Use:     "campaigns",
	Aliases: []string{"list", "ls"},
	Short:   "List all campaigns",
	Args:    cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.router.show(cmd.Context(), ui.PageCampaigns)
	}),
}

// campaignsViewCmd selects a campaign for the donate, cancel and release
// commands and shows its details.
var campaignsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Select a campaign and show its details",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid campaign id %q", args[0])
		}
		return a.views.View(cmd.Context(), id)
	}),
}

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Show the selected campaign with its donor history",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.router.show(cmd.Context(), ui.PageCampaign)
	}),
}

func init() {
	campaignsCmd.AddCommand(campaignsViewCmd)
	rootCmd.AddCommand(campaignsCmd)
	rootCmd.AddCommand(campaignCmd)
}
