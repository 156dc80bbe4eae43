package domain

import "strings"

type Contact struct {
	ID    int    `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
	Email string `json:"email" yaml:"email"`
}

func (c Contact) RecordID() int { return c.ID }

func (c Contact) WithID(id int) Contact {
	c.ID = id
	return c
}

// Matches reports whether query is a case-insensitive substring of the name
// or a literal substring of the phone number.
func (c Contact) Matches(query string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) ||
		strings.Contains(c.Phone, query)
}
