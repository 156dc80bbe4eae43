package facade

import (
	"context"

	"organizer/domain"
	"organizer/service"
)

type ContactFacade struct {
	*service.Manager[domain.Contact]
	F domain.Factory
}

func (f ContactFacade) Add(ctx context.Context, name, phone, email string) (domain.Contact, error) {
	return f.Create(ctx, f.F.NewContact(name, phone, email))
}

func (f ContactFacade) Edit(ctx context.Context, id int, name, phone, email string) (domain.Contact, error) {
	return f.Update(ctx, id, func(c *domain.Contact) {
		c.Name = name
		c.Phone = phone
		c.Email = email
	})
}

// Search returns every contact whose name contains query, ignoring case,
// or whose phone contains it literally.
func (f ContactFacade) Search(ctx context.Context, query string) ([]domain.Contact, error) {
	return f.Select(ctx, func(c domain.Contact) bool { return c.Matches(query) })
}
