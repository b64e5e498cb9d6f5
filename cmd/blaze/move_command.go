package main

import (
	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/api"
)

func newMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <card-id> <column>",
		Short: "Move a card to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			column, err := api.ParseColumn(args[1])
			if err != nil {
				return err
			}
			return moveCard(cmd, ctx, args[0], column)
		},
	}
}

func newDoneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "done <card-id>",
		Short: "Move a card to the done column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return moveCard(cmd, ctx, args[0], api.ColumnDone)
		},
	}
}

func moveCard(cmd *cobra.Command, ctx *commandContext, input string, column api.Column) error {
	mode, err := ctx.outputMode()
	if err != nil {
		return err
	}
	apiClient, err := ctx.apiClient()
	if err != nil {
		return err
	}
	id, err := ctx.resolveCardID(cmd.Context(), apiClient, input)
	if err != nil {
		return err
	}
	card, err := apiClient.MoveCard(cmd.Context(), id, column)
	if err != nil {
		return err
	}
	return renderCardDetail(cmd.OutOrStdout(), card, mode)
}
