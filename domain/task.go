package domain

type Task struct {
	ID          int    `json:"id"          yaml:"id"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Done        bool   `json:"done"        yaml:"done"`
	Priority    string `json:"priority"    yaml:"priority"`
	DueDate     string `json:"due_date"    yaml:"due_date"`
}

func (t Task) RecordID() int { return t.ID }

func (t Task) WithID(id int) Task {
	t.ID = id
	return t
}

func (t Task) Status() string {
	if t.Done {
		return "Выполнена"
	}
	return "Не выполнена"
}
