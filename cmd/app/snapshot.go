package main

import (
	"encoding/json"
	"fmt"

	"BrentDash/internal/di"
	"BrentDash/internal/domain/models"
	"BrentDash/internal/render/term"
	"BrentDash/internal/usecase"

	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	var (
		f      models.FilterState
		width  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Load every dataset once and print the filtered dashboard",
		Long: `Fetches all datasets from the analysis API, applies the date range and
event filters, and prints the dashboard to stdout. Datasets that failed to
load are listed in the error panel; the command itself still succeeds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := usecase.NewDateRange(f.Start, f.End); err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			loader, err := di.InitializeLoader(cfg)
			if err != nil {
				return fmt.Errorf("loader initialization failed: %w", err)
			}

			view, err := usecase.BuildView(loader.Load(cmd.Context()), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			_, err = fmt.Fprintln(out, term.New(width).Render(view))
			return err
		},
	}

	cmd.Flags().StringVar(&f.Start, "start", "", "Inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.End, "end", "", "Inclusive end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.Type, "type", models.All, "Event type filter")
	cmd.Flags().StringVar(&f.Source, "source", models.All, "Event source or region filter")
	cmd.Flags().IntVar(&width, "width", 80, "Output width in columns")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the view model as JSON")
	return cmd
}
