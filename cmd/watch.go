// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// watchCmd keeps the process alive so contract notifications are printed as
// they arrive. It needs a websocket or IPC endpoint; plain HTTP endpoints do
// not support subscriptions.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print campaign notifications as they happen",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		ctx := cmd.Context()
		if _, err := a.gateway.EnsureInitialized(ctx); err != nil {
			return a.settle("subscribing to campaign events", err)
		}
		if err := requireSubscriptions(a.gateway.Subscriptions(), a.cfg.RPCURL); err != nil {
			return err
		}
		pterm.Println("Watching for campaign events on " + a.cfg.RPCURL + " (Ctrl+C to stop)")
		<-ctx.Done()
		return nil
	}),
}

func requireSubscriptions(n int, endpoint string) error {
	if n == 0 {
		return fmt.Errorf("%s does not deliver contract events; use a websocket endpoint (ws://...) with --rpc", endpoint)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
