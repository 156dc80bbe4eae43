package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"organizer/config"
	"organizer/di"
	"organizer/logging"
	"organizer/menu"
)

// session holds what the root command opens for its subcommands.
type session struct {
	app  *di.App
	logs io.Closer
}

func (s *session) Close() error {
	if s.app != nil {
		s.app.Close()
		s.app = nil
	}
	if s.logs == nil {
		return nil
	}
	err := s.logs.Close()
	s.logs = nil
	return err
}

func newRoot(s *session) *cobra.Command {
	var (
		cfgPath string
		verbose bool
	)

	root := &cobra.Command{
		Use:           "organizer",
		Short:         "Personal organizer: notes, tasks, contacts, finance",
		Long:          `Organizer keeps notes, tasks, contacts and finance records in local JSON files (or SQLite/Postgres) and offers CSV, JSON and YAML export and import.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			level := logging.ParseLevel(cfg.LogLevel)
			if verbose {
				logging.Setup(cmd.ErrOrStderr(), level, true)
			} else if s.logs, err = logging.SetupFile(cfg.LogPath(), level); err != nil {
				return err
			}
			slog.Debug("config loaded", "backend", cfg.Backend, "data_dir", cfg.DataDir, "command", cmd.Name())

			console := menu.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			s.app, err = di.Build(cmd.Context(), cfg, console)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return menu.Run(cmd.Context(), s.app.Menu, &s.app.Deps)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/organizer/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr instead of the log file")

	root.AddCommand(listCmd(s), exportCmd(s), importCmd(s), reportCmd(s), calcCmd(s))
	return root
}

// Execute runs the command tree and releases storage and the log file
// whether or not the command failed.
func Execute(ctx context.Context) error {
	s := &session{}
	err := newRoot(s).ExecuteContext(ctx)
	return errors.Join(err, s.Close())
}
