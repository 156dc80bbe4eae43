package service

import "context"

// Store is the whole-collection persistence a Manager works on.
type Store[T any] interface {
	Name() string
	Location() string
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}
