package facade

import (
	"context"

	"organizer/domain"
	"organizer/service"
)

// NoteFacade is the notes manager: generic CRUD and transfer from the
// embedded Manager plus note-shaped add and edit.
type NoteFacade struct {
	*service.Manager[domain.Note]
	F domain.Factory
}

func (f NoteFacade) Add(ctx context.Context, title, content string) (domain.Note, error) {
	return f.Create(ctx, f.F.NewNote(title, content))
}

// Edit replaces title and content and refreshes the timestamp.
func (f NoteFacade) Edit(ctx context.Context, id int, title, content string) (domain.Note, error) {
	stamp := f.F.Stamp()
	return f.Update(ctx, id, func(n *domain.Note) {
		n.Touch(title, content, stamp)
	})
}
