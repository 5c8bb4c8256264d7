package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export dashboard data to files",
	}
	cmd.AddCommand(
		newExportSubcommand(opts, "emissions", "companies_emissions.csv",
			"Export the company emissions table as CSV",
			func(ctx context.Context, a *app, w io.Writer) error { return a.emissions.Export(ctx, w) }),
		newExportSubcommand(opts, "registrations", "pending_companies.xlsx",
			"Export pending registration requests as an XLSX workbook",
			func(ctx context.Context, a *app, w io.Writer) error { return a.registrations.Export(ctx, w) }),
	)
	return cmd
}

func newExportSubcommand(opts *rootOptions, name, defaultFile, short string, export func(context.Context, *app, io.Writer) error) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if output == "-" {
				return export(cmd.Context(), a, cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := export(cmd.Context(), a, f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", defaultFile, "Output file, or - for stdout")
	return cmd
}
