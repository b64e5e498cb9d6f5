package main

import (
	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show card details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}

			id, err := ctx.resolveCardID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			card, err := apiClient.GetCard(cmd.Context(), id)
			if err != nil {
				return err
			}
			return renderCardDetail(cmd.OutOrStdout(), card, mode)
		},
	}
}
