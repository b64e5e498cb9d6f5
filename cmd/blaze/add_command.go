package main

import (
	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/api"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		descFlag     string
		columnFlag   string
		priorityFlag string
		tagFlags     []string
		dueFlag      string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}

			column, err := api.ParseColumn(columnFlag)
			if err != nil {
				return err
			}
			priority, err := api.ParsePriority(priorityFlag)
			if err != nil {
				return err
			}

			create := api.CardCreate{
				Title:       args[0],
				Description: descFlag,
				Column:      column,
				Priority:    priority,
				Tags:        tagFlags,
			}
			if dueFlag != "" {
				due, err := parseDueDate(dueFlag)
				if err != nil {
					return err
				}
				create.DueDate = due
			}

			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			card, err := apiClient.CreateCard(cmd.Context(), create)
			if err != nil {
				return err
			}
			return renderCardDetail(cmd.OutOrStdout(), card, mode)
		},
	}

	cmd.Flags().StringVarP(&descFlag, "desc", "d", "", "Card description")
	cmd.Flags().StringVarP(&columnFlag, "column", "C", "todo", "Column to place the card in")
	cmd.Flags().StringVarP(&priorityFlag, "priority", "p", "medium", "Priority level")
	cmd.Flags().StringSliceVarP(&tagFlags, "tag", "t", nil, "Tags (repeatable or comma-separated)")
	cmd.Flags().StringVar(&dueFlag, "due", "", "Due date (YYYY-MM-DD)")
	return cmd
}
