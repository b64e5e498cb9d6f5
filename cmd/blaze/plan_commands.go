package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/api"
)

// pipedContent reads plan-file content from stdin when stdin is not an
// interactive terminal. The second return reports whether anything was
// read.
func pipedContent(cmd *cobra.Command) (string, bool, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "", false, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), true, nil
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage plans and their files",
	}
	cmd.AddCommand(newPlanListCommand(ctx))
	cmd.AddCommand(newPlanShowCommand(ctx))
	cmd.AddCommand(newPlanAddCommand(ctx))
	cmd.AddCommand(newPlanEditCommand(ctx))
	cmd.AddCommand(newPlanRmCommand(ctx))
	cmd.AddCommand(newPlanFileCommand(ctx))
	return cmd
}

func newPlanListCommand(ctx *commandContext) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}

			var status *api.PlanStatus
			if statusFlag != "" {
				parsed, err := api.ParsePlanStatus(statusFlag)
				if err != nil {
					return err
				}
				status = &parsed
			}

			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			plans, err := apiClient.ListPlans(cmd.Context(), status)
			if err != nil {
				return err
			}
			return renderPlans(cmd.OutOrStdout(), plans, mode)
		},
	}

	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "Filter by status")
	return cmd
}

func newPlanShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show plan details",
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
			id, err := ctx.resolvePlanID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			plan, err := apiClient.GetPlan(cmd.Context(), id)
			if err != nil {
				return err
			}
			return renderPlanDetail(cmd.OutOrStdout(), plan, mode)
		},
	}
}

func newPlanAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new plan",
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
			plan, err := apiClient.CreatePlan(cmd.Context(), api.PlanCreate{Title: args[0]})
			if err != nil {
				return err
			}
			return renderPlanDetail(cmd.OutOrStdout(), plan, mode)
		},
	}
}

func newPlanEditCommand(ctx *commandContext) *cobra.Command {
	var (
		titleFlag  string
		statusFlag string
	)

	cmd := &cobra.Command{
		Use:   "edit <plan-id>",
		Short: "Update plan fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}

			var update api.PlanUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &titleFlag
			}
			if statusFlag != "" {
				status, err := api.ParsePlanStatus(statusFlag)
				if err != nil {
					return err
				}
				update.Status = &status
			}
			if update.Title == nil && update.Status == nil {
				return errors.New("no fields to update")
			}

			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			id, err := ctx.resolvePlanID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			plan, err := apiClient.UpdatePlan(cmd.Context(), id, update)
			if err != nil {
				return err
			}
			return renderPlanDetail(cmd.OutOrStdout(), plan, mode)
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "New title")
	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "New status")
	return cmd
}

func newPlanRmCommand(ctx *commandContext) *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "rm <plan-id>",
		Short: "Delete a plan and all its files",
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
			id, err := ctx.resolvePlanID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}

			if !forceFlag {
				plan, err := apiClient.GetPlan(cmd.Context(), id)
				if err != nil {
					return err
				}
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete plan %q and its %d file(s)?", plan.Title, len(plan.Files)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := apiClient.DeletePlan(cmd.Context(), id); err != nil {
				return err
			}
			return renderDeleted(cmd.OutOrStdout(), id, mode)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
	return cmd
}

func newPlanFileCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage files attached to a plan",
	}
	cmd.AddCommand(newPlanFileAddCommand(ctx))
	cmd.AddCommand(newPlanFileShowCommand(ctx))
	cmd.AddCommand(newPlanFileEditCommand(ctx))
	cmd.AddCommand(newPlanFileRmCommand(ctx))
	return cmd
}

func newPlanFileAddCommand(ctx *commandContext) *cobra.Command {
	var contentFlag string

	cmd := &cobra.Command{
		Use:   "add <plan-id> <name>",
		Short: "Add a file to a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}

			content := contentFlag
			if !cmd.Flags().Changed("content") {
				if piped, ok, err := pipedContent(cmd); err != nil {
					return err
				} else if ok {
					content = piped
				}
			}

			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			id, err := ctx.resolvePlanID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			plan, err := apiClient.AddPlanFile(cmd.Context(), id, api.PlanFileCreate{
				Name:    args[1],
				Content: content,
			})
			if err != nil {
				return err
			}
			return renderPlanDetail(cmd.OutOrStdout(), plan, mode)
		},
	}

	cmd.Flags().StringVar(&contentFlag, "content", "", "File content (read from stdin when omitted)")
	return cmd
}

func newPlanFileShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plan-id> <name>",
		Short: "Print a plan file's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			id, err := ctx.resolvePlanID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			file, err := apiClient.GetPlanFile(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return renderPlanFile(cmd.OutOrStdout(), file, mode)
		},
	}
}

func newPlanFileEditCommand(ctx *commandContext) *cobra.Command {
	var (
		contentFlag string
		renameFlag  string
	)

	cmd := &cobra.Command{
		Use:   "edit <plan-id> <name>",
		Short: "Update a plan file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}

			var update api.PlanFileUpdate
			if cmd.Flags().Changed("content") {
				update.Content = &contentFlag
			} else if renameFlag == "" {
				// Content comes from stdin when --content is absent; a
				// rename-only edit leaves stdin untouched.
				if piped, ok, err := pipedContent(cmd); err != nil {
					return err
				} else if ok {
					content := piped
					update.Content = &content
				}
			}
			if renameFlag != "" {
				update.Name = &renameFlag
			}
			if update.Name == nil && update.Content == nil {
				return errors.New("no fields to update")
			}

			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			id, err := ctx.resolvePlanID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			plan, err := apiClient.UpdatePlanFile(cmd.Context(), id, args[1], update)
			if err != nil {
				return err
			}
			return renderPlanDetail(cmd.OutOrStdout(), plan, mode)
		},
	}

	cmd.Flags().StringVar(&contentFlag, "content", "", "New file content (read from stdin when omitted)")
	cmd.Flags().StringVar(&renameFlag, "rename", "", "New file name")
	return cmd
}

func newPlanFileRmCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <plan-id> <name>",
		Short: "Delete a file from a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			apiClient, err := ctx.apiClient()
			if err != nil {
				return err
			}
			id, err := ctx.resolvePlanID(cmd.Context(), apiClient, args[0])
			if err != nil {
				return err
			}
			plan, err := apiClient.DeletePlanFile(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return renderPlanDetail(cmd.OutOrStdout(), plan, mode)
		},
	}
}
