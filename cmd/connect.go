// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// connectCmd stores the wallet's first account as the session account and
// shows the account page.
var connectCmd = &cobra.Command{
	Use:     "connect",
	Aliases: []string{"login"},
	Short:   "Connect your wallet account",
	Long: `The connect command asks the configured wallet for its accounts and remembers the
first one as the connected account. The wallet key comes from CHARITY_PRIVATE_KEY or
from the OS keychain (see 'charity wallet import').`,

	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.settle("connecting the wallet", a.connector.Connect(cmd.Context()))
	}),
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
