package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/api"
	"github.com/orveth/blaze/internal/client"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <card-id>",
		Short: "Archive a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return archiveCard(cmd, ctx, args[0], (*client.Client).ArchiveCard)
		},
	}
}

func newUnarchiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive <card-id>",
		Short: "Restore an archived card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return archiveCard(cmd, ctx, args[0], (*client.Client).UnarchiveCard)
		},
	}
}

func archiveCard(cmd *cobra.Command, ctx *commandContext, input string, op func(*client.Client, context.Context, string) (api.Card, error)) error {
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
	card, err := op(apiClient, cmd.Context(), id)
	if err != nil {
		return err
	}
	return renderCardDetail(cmd.OutOrStdout(), card, mode)
}
