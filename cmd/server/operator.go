package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newOperatorCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Manage operator API keys",
	}
	cmd.AddCommand(newOperatorAddCommand(opts))
	return cmd
}

func newOperatorAddCommand(opts *rootOptions) *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an API key for an operator and print its bearer token",
		Example: `  # Issue a token for an inspector
  govdash operator add --name "Asha Rao" --description "field inspector"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name = strings.TrimSpace(name)
			if name == "" {
				return errors.New("--name must not be blank")
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			token := uuid.NewString()
			if err := a.operators.AddAPIKey(cmd.Context(), token, name, description); err != nil {
				return fmt.Errorf("add api key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Operator name recorded as the actor of their actions (required)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form note stored with the key")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
