package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"organizer/domain"
	"organizer/files"
	"organizer/menu"
	"organizer/service"
)

func listCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list <notes|tasks|contacts|finance>",
		Short: "Print every record of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, s, args)
		},
	}
}

var listKeys = map[domain.Collection]string{
	domain.Notes:    "list_notes",
	domain.Tasks:    "list_tasks",
	domain.Contacts: "list_contacts",
	domain.Finance:  "list_records",
}

func runList(cmd *cobra.Command, s *session, args []string) error {
	c, err := domain.ParseCollection(args[0])
	if err != nil {
		return err
	}
	return menu.Execute(cmd.Context(), listKeys[c], &s.app.Deps)
}

func exportCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <notes|tasks|contacts|finance>",
		Short: "Write a collection to <collection>_export.<format>",
		Long: `Write a whole collection to its fixed export file in the export directory.

Examples:
  organizer export notes
  organizer export finance --format yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, s, args)
		},
	}
	cmd.Flags().StringP("format", "f", "csv", "csv, json or yaml")
	return cmd
}

func runExport(cmd *cobra.Command, s *session, args []string) error {
	c, err := domain.ParseCollection(args[0])
	if err != nil {
		return err
	}
	raw, _ := cmd.Flags().GetString("format")
	f, err := files.ParseFormat(raw)
	if err != nil {
		return err
	}

	d := s.app.Deps
	ctx := cmd.Context()
	var path string
	var n int
	switch c {
	case domain.Notes:
		path, n, err = d.Notes.Export(ctx, f)
	case domain.Tasks:
		path, n, err = d.Tasks.Export(ctx, f)
	case domain.Contacts:
		path, n, err = d.Contacts.Export(ctx, f)
	case domain.Finance:
		path, n, err = d.Finance.Export(ctx, f)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %s\n", c, n, path)
	return nil
}

func importCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <notes|tasks|contacts|finance> <path>",
		Short: "Append the records of a CSV, JSON or YAML file to a collection",
		Long: `Append every record of the file to the collection, ids included.
The file is parsed in full first; a bad file leaves the collection untouched.

Examples:
  organizer import tasks tasks_export.csv
  organizer import contacts backup.json
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, s, args)
		},
	}
	cmd.Flags().StringP("format", "f", "", "csv, json or yaml (default: from the file extension)")
	return cmd
}

func runImport(cmd *cobra.Command, s *session, args []string) error {
	c, err := domain.ParseCollection(args[0])
	if err != nil {
		return err
	}
	path := args[1]
	f := files.FormatOf(path)
	if raw, _ := cmd.Flags().GetString("format"); raw != "" {
		if f, err = files.ParseFormat(raw); err != nil {
			return err
		}
	}

	d := s.app.Deps
	ctx := cmd.Context()
	var n int
	switch c {
	case domain.Notes:
		n, err = importInto(ctx, d.Notes.Manager, path, f)
	case domain.Tasks:
		n, err = importInto(ctx, d.Tasks.Manager, path, f)
	case domain.Contacts:
		n, err = importInto(ctx, d.Contacts.Manager, path, f)
	case domain.Finance:
		n, err = importInto(ctx, d.Finance.Manager, path, f)
	}
	if err != nil {
		return err
	}
	if err := d.State.SaveLastImport(string(c), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d <- %s\n", c, n, path)
	return nil
}

func importInto[T domain.Record[T]](ctx context.Context, m *service.Manager[T], path string, f files.Format) (int, error) {
	return m.Import(ctx, path, f)
}
