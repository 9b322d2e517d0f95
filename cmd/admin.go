// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage contract administrators",
}

var adminAddCmd = &cobra.Command{
	Use:   "add <address>",
	Short: "Grant admin rights to an address",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.settleAction("adding the admin", a.actions.AddAdmin(cmd.Context(), args[0]))
	}),
}

var adminRemoveCmd = &cobra.Command{
	Use:   "remove <address>",
	Short: "Revoke admin rights from an address",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.settleAction("removing the admin", a.actions.RemoveAdmin(cmd.Context(), args[0]))
	}),
}

var adminStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the connected account is an admin",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		addr, ok := a.session.Address()
		isAdmin := a.gate.CheckAdminStatus(cmd.Context())
		if !ok {
			return nil
		}
		if isAdmin {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is an admin\n", addr)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not an admin\n", addr)
		}
		return nil
	}),
}

func init() {
	adminCmd.AddCommand(adminAddCmd, adminRemoveCmd, adminStatusCmd)
	rootCmd.AddCommand(adminCmd)
}
