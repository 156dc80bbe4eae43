package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"organizer/menu"
)

func reportCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Income, expenses and balance for a date range",
		Long: `Total the finance records dated within the range, both ends inclusive.
Dates are DD-MM-YYYY; an empty bound is open.

Examples:
  organizer report --from 01-01-2024 --to 31-01-2024
  organizer report --from 01-01-2024 --by-category
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, s)
		},
	}
	cmd.Flags().String("from", "", "first day (DD-MM-YYYY)")
	cmd.Flags().String("to", "", "last day (DD-MM-YYYY)")
	cmd.Flags().Bool("by-category", false, "break the totals down by category")
	return cmd
}

func runReport(cmd *cobra.Command, s *session) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	byCategory, _ := cmd.Flags().GetBool("by-category")

	d := s.app.Deps
	if byCategory {
		rows, err := d.Finance.Breakdown(cmd.Context(), from, to)
		if err != nil {
			return err
		}
		menu.PrintBreakdown(d.IO, rows)
		return nil
	}
	sum, err := d.Finance.Report(cmd.Context(), from, to)
	if err != nil {
		return err
	}
	menu.PrintSummary(d.IO, sum)
	return nil
}
