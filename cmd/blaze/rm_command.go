package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCommand(ctx *commandContext) *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "rm <card-id>",
		Short: "Delete a card",
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

			if !forceFlag {
				card, err := apiClient.GetCard(cmd.Context(), id)
				if err != nil {
					return err
				}
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete card %q (%s)?", card.Title, shortID(card.ID)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := apiClient.DeleteCard(cmd.Context(), id); err != nil {
				return err
			}
			return renderDeleted(cmd.OutOrStdout(), id, mode)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
	return cmd
}
