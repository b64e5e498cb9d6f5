package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/api"
	"github.com/orveth/blaze/internal/filter"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		columnFlag      string
		priorityFlags   []string
		tagFlags        []string
		overdueFlag     bool
		includeArchived bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards with optional filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}

			var column *api.Column
			if columnFlag != "" {
				parsed, err := api.ParseColumn(columnFlag)
				if err != nil {
					return err
				}
				column = &parsed
			}

			priorities := make([]api.Priority, 0, len(priorityFlags))
			for _, value := range priorityFlags {
				p, err := api.ParsePriority(value)
				if err != nil {
					return err
				}
				priorities = append(priorities, p)
			}

			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}

			// Column and archive narrowing happen server-side; the rest is
			// filtered here.
			cards, err := apiClient.ListCards(cmd.Context(), column, includeArchived)
			if err != nil {
				return err
			}

			filtered := filter.Apply(cards, filter.Spec{
				Priorities: priorities,
				Tags:       tagFlags,
				Overdue:    overdueFlag,
			}, time.Now().UTC())

			return renderCards(cmd.OutOrStdout(), filtered, mode)
		},
	}

	cmd.Flags().StringVarP(&columnFlag, "column", "C", "", "Filter by column")
	cmd.Flags().StringSliceVarP(&priorityFlags, "priority", "p", nil, "Filter by priority (repeatable or comma-separated)")
	cmd.Flags().StringSliceVarP(&tagFlags, "tag", "t", nil, "Filter by tag, any match (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&overdueFlag, "overdue", false, "Show only overdue cards")
	cmd.Flags().BoolVar(&includeArchived, "include-archived", false, "Include archived cards")
	return cmd
}
