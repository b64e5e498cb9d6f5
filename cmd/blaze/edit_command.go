package main

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/api"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	var (
		titleFlag    string
		descFlag     string
		priorityFlag string
		columnFlag   string
		dueFlag      string
		clearDueFlag bool
		addTags      []string
		removeTags   []string
	)

	cmd := &cobra.Command{
		Use:   "edit <card-id>",
		Short: "Update card fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			if dueFlag != "" && clearDueFlag {
				return errors.New("--due and --clear-due are mutually exclusive")
			}

			var update api.CardUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &titleFlag
			}
			if cmd.Flags().Changed("desc") {
				update.Description = &descFlag
			}
			if priorityFlag != "" {
				priority, err := api.ParsePriority(priorityFlag)
				if err != nil {
					return err
				}
				update.Priority = &priority
			}
			if columnFlag != "" {
				column, err := api.ParseColumn(columnFlag)
				if err != nil {
					return err
				}
				update.Column = &column
			}
			if dueFlag != "" {
				due, err := parseDueDate(dueFlag)
				if err != nil {
					return err
				}
				update.DueDate = due
			}

			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			id, err := ctx.resolveCardID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}

			// Tag edits and due clearing need the current card: tags are
			// replaced wholesale on the wire, and clearing a due date means
			// sending an explicit null rather than omitting the field.
			if len(addTags) > 0 || len(removeTags) > 0 {
				card, err := apiClient.GetCard(cmd.Context(), id)
				if err != nil {
					return err
				}
				tags := mergeTags(card.Tags, addTags, removeTags)
				update.Tags = &tags
			}

			if update.Empty() && !clearDueFlag {
				return errors.New("no fields to update")
			}

			var card api.Card
			if !update.Empty() {
				card, err = apiClient.UpdateCard(cmd.Context(), id, update)
				if err != nil {
					return err
				}
			}
			if clearDueFlag {
				card, err = apiClient.ClearCardDueDate(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			return renderCardDetail(cmd.OutOrStdout(), card, mode)
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "New title")
	cmd.Flags().StringVarP(&descFlag, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&priorityFlag, "priority", "p", "", "New priority")
	cmd.Flags().StringVarP(&columnFlag, "column", "C", "", "New column")
	cmd.Flags().StringVar(&dueFlag, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDueFlag, "clear-due", false, "Remove the due date")
	cmd.Flags().StringSliceVar(&addTags, "add-tag", nil, "Add a tag (repeatable)")
	cmd.Flags().StringSliceVar(&removeTags, "remove-tag", nil, "Remove a tag (repeatable)")
	return cmd
}

// mergeTags applies additions then removals, preserving order and
// dropping duplicates.
func mergeTags(current, add, remove []string) []string {
	merged := make([]string, 0, len(current)+len(add))
	seen := make(map[string]bool, len(current)+len(add))
	for _, tag := range current {
		if !seen[tag] {
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	for _, tag := range add {
		if !seen[tag] {
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	merged = slices.DeleteFunc(merged, func(tag string) bool {
		return slices.Contains(remove, tag)
	})
	return merged
}
