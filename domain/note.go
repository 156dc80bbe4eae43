package domain

type Note struct {
	ID        int    `json:"id"        yaml:"id"`
	Title     string `json:"title"     yaml:"title"`
	Content   string `json:"content"   yaml:"content"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

func (n Note) RecordID() int { return n.ID }

func (n Note) WithID(id int) Note {
	n.ID = id
	return n
}

// Touch rewrites title and content and refreshes the modification stamp.
func (n *Note) Touch(title, content, stamp string) {
	n.Title = title
	n.Content = content
	n.Timestamp = stamp
}
