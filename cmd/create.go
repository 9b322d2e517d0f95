// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	createTitle       string
	createDescription string
	createRecipient   string
	createGoal        string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a fundraising campaign",
	Long: `The create command opens a new campaign. The goal is given in ETH with up to 18
decimals; funds are paid to the recipient when an administrator releases them.`,
	Example: `  charity create --title "Clean water" --description "Wells for 3 villages" \
    --recipient 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 --goal 12.5`,
	Args: cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		e := a.actions.CreateCampaign(cmd.Context(), createTitle, createDescription, createRecipient, createGoal)
		return a.settleAction("creating the campaign", e)
	}),
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Campaign title")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Campaign description")
	createCmd.Flags().StringVar(&createRecipient, "recipient", "", "Address that receives released funds")
	createCmd.Flags().StringVar(&createGoal, "goal", "", "Fundraising goal in ETH")
	rootCmd.AddCommand(createCmd)
}
