// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"charity/cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
}

// configShowCmd prints the effective settings, environment overrides included.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(configRows(c)).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting in the config file",
	Long: "The set command writes one setting to the config file. Keys: " +
		strings.Join(config.Keys, ", ") + ".\nEnvironment variables still take precedence.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile()
		if err != nil {
			return err
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(c); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		pterm.Println("✅ " + args[0] + " = " + args[1])
		return nil
	},
}

func configRows(c config.Config) [][]string {
	return [][]string{
		{"Setting", "Value"},
		{"rpc_url", c.RPCURL},
		{"contract_address", c.ContractAddress},
		{"chain_id", fmt.Sprint(c.ChainID)},
		{"usd_rate", fmt.Sprint(c.USDRate)},
		{"log_level", c.LogLevel},
	}
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
