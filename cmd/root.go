// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the charity dApp client.
// Each page of the dApp is a command that loads and prints a view, and each
// button is a command that sends one transaction to the Charity contract and
// waits for it to be mined.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"charity/cli/internal/logging"
)

var (
	showVersion  bool
	flagRPC      string
	flagContract string
	flagVerbose  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "charity",
	Short: "Fund and manage charity campaigns on Ethereum",
	Long: `charity is a command-line client for the Charity contract. Connect a wallet
to browse and fund campaigns. Administrators can also release or cancel them.

The connected account and the selected campaign are remembered between commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "charity %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Interrupts cancel the command's context so
// pending waits for transaction receipts stop cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("Error", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&flagRPC, "rpc", "", "Ethereum JSON-RPC endpoint (overrides CHARITY_RPC_URL)")
	rootCmd.PersistentFlags().StringVar(&flagContract, "contract", "", "Charity contract address (overrides CHARITY_CONTRACT)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}
