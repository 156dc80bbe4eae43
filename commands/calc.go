package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"organizer/menu"
)

func calcCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an expression of digits, + - * / and spaces",
		Long: `Evaluate an arithmetic expression. Put -- before an expression that
starts with a minus:

  organizer calc '2 + 3 * 4'
  organizer calc -- '-2 ** 2 + 10 / 4'
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return menu.PrintCalc(s.app.Deps.IO, strings.Join(args, " "))
		},
	}
}
