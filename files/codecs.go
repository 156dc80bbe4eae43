package files

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"organizer/domain"
)

type NoteCodec struct{}

func (NoteCodec) Header() []string { return []string{"id", "title", "content", "timestamp"} }

func (NoteCodec) Encode(n domain.Note) []string {
	return []string{strconv.Itoa(n.ID), n.Title, n.Content, n.Timestamp}
}

// Decode keeps the timestamp column verbatim, even when it is empty.
func (NoteCodec) Decode(row Row) (domain.Note, error) {
	id, err := parseID(row["id"])
	if err != nil {
		return domain.Note{}, err
	}
	return domain.Note{
		ID:        id,
		Title:     row["title"],
		Content:   row["content"],
		Timestamp: row["timestamp"],
	}, nil
}

type TaskCodec struct{}

func (TaskCodec) Header() []string {
	return []string{"id", "title", "description", "done", "priority", "due_date"}
}

func (TaskCodec) Encode(t domain.Task) []string {
	return []string{strconv.Itoa(t.ID), t.Title, t.Description, formatBool(t.Done), t.Priority, t.DueDate}
}

// Decode treats anything but the exact text "True" as not done.
func (TaskCodec) Decode(row Row) (domain.Task, error) {
	id, err := parseID(row["id"])
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{
		ID:          id,
		Title:       row["title"],
		Description: row["description"],
		Done:        row["done"] == "True",
		Priority:    row["priority"],
		DueDate:     row["due_date"],
	}, nil
}

type ContactCodec struct{}

func (ContactCodec) Header() []string { return []string{"id", "name", "phone", "email"} }

func (ContactCodec) Encode(c domain.Contact) []string {
	return []string{strconv.Itoa(c.ID), c.Name, c.Phone, c.Email}
}

func (ContactCodec) Decode(row Row) (domain.Contact, error) {
	id, err := parseID(row["id"])
	if err != nil {
		return domain.Contact{}, err
	}
	return domain.Contact{ID: id, Name: row["name"], Phone: row["phone"], Email: row["email"]}, nil
}

type FinanceCodec struct{}

func (FinanceCodec) Header() []string {
	return []string{"id", "amount", "category", "date", "description"}
}

func (FinanceCodec) Encode(r domain.FinanceRecord) []string {
	return []string{strconv.Itoa(r.ID), FormatAmount(r.Amount), r.Category, r.Date, r.Description}
}

func (FinanceCodec) Decode(row Row) (domain.FinanceRecord, error) {
	id, err := parseID(row["id"])
	if err != nil {
		return domain.FinanceRecord{}, err
	}
	amt, err := ParseAmount(row["amount"])
	if err != nil {
		return domain.FinanceRecord{}, err
	}
	return domain.FinanceRecord{
		ID:          id,
		Amount:      amt,
		Category:    row["category"],
		Date:        row["date"],
		Description: row["description"],
	}, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("id %q is not an integer", s)
	}
	return id, nil
}

// ParseAmount accepts a finite decimal number, with a comma allowed as the
// decimal separator.
func ParseAmount(s string) (float64, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not a number", s)
	}
	return v, nil
}

// FormatAmount renders a float the way it reads back: shortest form, with
// at least one fractional digit (100.0, -40.5).
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
