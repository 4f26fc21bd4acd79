package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/resale-admin/cli/internal/report"
)

// ReportCmd returns the `resale report` command.
func ReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print order, user, and catalog totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := LoadSession()
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := report.Load(cmd.Context(), s.Client, s.Log)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			return report.WriteText(cmd.OutOrStdout(), r)
		},
	}
}
