package main

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/api"
)

func newAgentCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Agent workflow commands",
	}
	cmd.AddCommand(newAgentListCommand(ctx))
	cmd.AddCommand(newAgentStartCommand(ctx))
	cmd.AddCommand(newAgentProgressCommand(ctx))
	cmd.AddCommand(newAgentBlockCommand(ctx))
	cmd.AddCommand(newAgentDoneCommand(ctx))
	cmd.AddCommand(newAgentCheckCommand(ctx))
	return cmd
}

func newAgentListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cards ready for agent pickup",
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
			cards, err := apiClient.ListAgentReady(cmd.Context())
			if err != nil {
				return err
			}
			return renderCards(cmd.OutOrStdout(), cards, mode)
		},
	}
}

func newAgentStartCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "start <card-id>",
		Short: "Claim a card and mark it in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setAgentStatus(cmd, ctx, args[0], api.AgentInProgress, "")
		},
	}
}

func newAgentProgressCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <card-id> <message>",
		Short: "Append a progress note to a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			if args[1] == "" {
				return errors.New("progress message required")
			}
			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			id, err := ctx.resolveCardID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			card, err := apiClient.AddAgentProgress(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return renderCardDetail(cmd.OutOrStdout(), card, mode)
		},
	}
}

func newAgentBlockCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "block <card-id> <reason>",
		Short: "Mark a card blocked with a reason",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[1] == "" {
				return errors.New("blocked reason required")
			}
			return setAgentStatus(cmd, ctx, args[0], api.AgentBlocked, args[1])
		},
	}
}

func newAgentDoneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "done <card-id>",
		Short: "Mark a card ready for review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setAgentStatus(cmd, ctx, args[0], api.AgentNeedsReview, "")
		},
	}
}

func newAgentCheckCommand(ctx *commandContext) *cobra.Command {
	var uncheckFlag bool

	cmd := &cobra.Command{
		Use:   "check <card-id> <criterion-index>",
		Short: "Check off an acceptance criterion (1-based index)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 1 {
				return errors.New("criterion index must be a positive number")
			}
			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			id, err := ctx.resolveCardID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			card, err := apiClient.ToggleCriterion(cmd.Context(), id, index-1, !uncheckFlag)
			if err != nil {
				return err
			}
			return renderCardDetail(cmd.OutOrStdout(), card, mode)
		},
	}

	cmd.Flags().BoolVar(&uncheckFlag, "uncheck", false, "Clear the criterion instead of checking it")
	return cmd
}

func setAgentStatus(cmd *cobra.Command, ctx *commandContext, input string, status api.AgentStatus, reason string) error {
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
	card, err := apiClient.UpdateAgentStatus(cmd.Context(), id, status, reason)
	if err != nil {
		return err
	}
	return renderCardDetail(cmd.OutOrStdout(), card, mode)
}
