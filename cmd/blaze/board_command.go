package main

import (
	"github.com/spf13/cobra"
)

func newBoardCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show board overview (column counts)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}

			cards, err := apiClient.ListCards(cmd.Context(), nil, false)
			if err != nil {
				return err
			}
			return renderBoard(cmd.OutOrStdout(), buildBoardSummary(cards), mode)
		},
	}
}
