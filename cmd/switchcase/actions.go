package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/switchcase/pkg/registry"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: MsgActionsShort,
	Long:  `Actions lists every action registered in the global action registry, which is the vocabulary available to 'switchcase run'.`,
	Run: func(cmd *cobra.Command, args []string) {
		names := registry.ListActions()
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), MsgNoActions)
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), formatBold(MsgAvailableActions))
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), MsgActionItem, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
