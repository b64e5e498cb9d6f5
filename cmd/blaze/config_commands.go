package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and update the CLI configuration",
	}
	cmd.AddCommand(newConfigShowCommand(ctx))
	cmd.AddCommand(newConfigInitCommand(ctx))
	cmd.AddCommand(newConfigSetURLCommand(ctx))
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			cfg, err := ctx.resolvedConfig()
			if err != nil {
				return err
			}

			tokenState := "not set"
			if cfg.Token != "" {
				tokenState = "set"
			}

			if mode == modeJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"url":   cfg.URL,
					"token": tokenState,
				})
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "url:    %s\n", cfg.URL)
			fmt.Fprintf(cmd.OutOrStdout(), "token:  %s\n", tokenState)
			fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", path)
			return nil
		},
	}
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var urlFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := urlFlag
			if url == "" {
				url = config.DefaultURL
			}
			if err := (config.File{URL: url}).Save(); err != nil {
				return err
			}
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", glyphOK, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&urlFlag, "url", "", "API base URL to persist")
	return cmd
}

func newConfigSetURLCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-url <url>",
		Short: "Persist the API base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.LoadFile("")
			if err != nil {
				return err
			}
			file.URL = args[0]
			if err := file.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s URL set to %s\n", glyphOK, args[0])
			return nil
		},
	}
}
