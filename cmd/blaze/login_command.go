package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orveth/blaze/internal/config"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var passwordFlag string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and save the API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.apiClient()
			if err != nil {
				return err
			}

			password := strings.TrimSpace(passwordFlag)
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return errors.New("password required")
				}
				password = strings.TrimSpace(line)
			}
			if password == "" {
				return errors.New("password required")
			}

			token, err := api.Login(cmd.Context(), password)
			if err != nil {
				return err
			}
			if err := config.SaveToken(token); err != nil {
				return err
			}

			path, err := config.TokenPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Token saved to %s\n", glyphOK, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&passwordFlag, "password", "", "Board password (prompted when omitted)")
	return cmd
}
