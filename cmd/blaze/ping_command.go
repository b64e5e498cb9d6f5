package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check API connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.apiClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			resp, err := api.Health(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "%s Failed to connect to %s\n", glyphFail, api.BaseURL())
				return err
			}
			if resp.Status != "ok" {
				fmt.Fprintf(out, "%s Unexpected status: %s\n", glyphWarn, resp.Status)
				return nil
			}
			fmt.Fprintf(out, "%s Connected to %s\n", glyphOK, api.BaseURL())
			return nil
		},
	}
}
