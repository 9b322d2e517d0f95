// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"charity/cli/internal/keychain"
	"charity/cli/internal/terminal"
	"charity/cli/internal/wallet"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage the signing key stored in the OS keychain",
}

// walletImportCmd reads a private key without echo, checks it and stores it
// in the OS keychain.
var walletImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Store a private key in the OS keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := terminal.ReadSecret(os.Stdin, cmd.OutOrStdout(), "Private key (hex): ")
		if err != nil {
			return err
		}
		p, err := wallet.NewKeyProvider(raw)
		if err != nil {
			pterm.Println("❌ " + err.Error())
			return nil
		}
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system.")
			pterm.Println("   Set CHARITY_PRIVATE_KEY instead.")
			return nil
		}
		if err := km.SaveWalletKey(raw); err != nil {
			return fmt.Errorf("save wallet key: %w", err)
		}
		pterm.Println("✅ Wallet key saved for " + p.Address().Hex())
		pterm.Println("   Run 'charity connect' to use it.")
		return nil
	},
}

var walletForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Remove the stored private key from the OS keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system.")
			return nil
		}
		if err := km.ClearWalletKey(); err != nil && !errors.Is(err, keychain.ErrNotFound) {
			return err
		}
		pterm.Println("✅ Wallet key removed from the keychain")
		return nil
	},
}

func init() {
	walletCmd.AddCommand(walletImportCmd, walletForgetCmd)
	rootCmd.AddCommand(walletCmd)
}
