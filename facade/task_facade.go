package facade

import (
	"context"

	"organizer/domain"
	"organizer/service"
)

type TaskFacade struct {
	*service.Manager[domain.Task]
	F domain.Factory
}

func (f TaskFacade) Add(ctx context.Context, title, description, priority, dueDate string) (domain.Task, error) {
	return f.Create(ctx, f.F.NewTask(title, description, priority, dueDate))
}

// Edit rewrites the descriptive fields; the done flag is left as is.
func (f TaskFacade) Edit(ctx context.Context, id int, title, description, priority, dueDate string) (domain.Task, error) {
	return f.Update(ctx, id, func(t *domain.Task) {
		t.Title = title
		t.Description = description
		t.Priority = priority
		t.DueDate = dueDate
	})
}

func (f TaskFacade) MarkDone(ctx context.Context, id int) (domain.Task, error) {
	return f.Update(ctx, id, func(t *domain.Task) { t.Done = true })
}
