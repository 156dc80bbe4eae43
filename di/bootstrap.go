package di

import (
	"context"

	"organizer/menu"
)

type ensurer interface {
	Location() string
	Ensure(ctx context.Context) (bool, error)
}

// bootstrap writes an empty collection for every store that has none yet.
func bootstrap(ctx context.Context, console *menu.Console, stores ...ensurer) error {
	for _, s := range stores {
		created, err := s.Ensure(ctx)
		if err != nil {
			return err
		}
		if created {
			console.Printf("Создан файл: %s\n", s.Location())
		}
	}
	return nil
}
