package menu

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Command struct {
	Key  string
	Name string
	Run  func(ctx context.Context) error
}

// WithTiming logs every run of c with its own run_id and duration.
func WithTiming(c Command) Command {
	return Command{
		Key:  c.Key,
		Name: c.Name,
		Run: func(ctx context.Context) error {
			runID := uuid.NewString()
			start := time.Now()
			err := c.Run(ctx)
			dur := time.Since(start).Round(time.Millisecond)

			if err != nil {
				slog.Warn("command failed", "run_id", runID, "key", c.Key, "name", c.Name, "duration", dur, "error", err)
				return err
			}
			slog.Info("command done", "run_id", runID, "key", c.Key, "name", c.Name, "duration", dur)
			return nil
		},
	}
}
