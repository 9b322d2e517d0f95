// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// logoutCmd forgets the connected account and the selected campaign. The
// wallet key stays in the keychain; use 'charity wallet forget' to remove it.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the connected account",
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.connector.Logout(cmd.Context())
	}),
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
