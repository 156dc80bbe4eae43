package domain

import "time"

// Factory builds records without identifiers; the manager assigns ids on
// insert. Now is the clock used for note timestamps.
type Factory struct {
	Now func() time.Time
}

func NewFactory() Factory { return Factory{Now: time.Now} }

func (f Factory) Stamp() string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	return now().Format(TimestampLayout)
}

func (f Factory) NewNote(title, content string) Note {
	return Note{
		Title:     title,
		Content:   content,
		Timestamp: f.Stamp(),
	}
}

func (Factory) NewTask(title, description, priority, dueDate string) Task {
	return Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
	}
}

func (Factory) NewContact(name, phone, email string) Contact {
	return Contact{
		Name:  name,
		Phone: phone,
		Email: email,
	}
}

func (Factory) NewFinanceRecord(amount float64, category, date, description string) FinanceRecord {
	return FinanceRecord{
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	}
}
