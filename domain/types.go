package domain

// Record is the capability set shared by every collection entity:
// it exposes its identifier and can produce a copy carrying a new one.
type Record[T any] interface {
	RecordID() int
	WithID(id int) T
}

// Collection names double as storage bucket names and export file prefixes.
type Collection string

const (
	Notes    Collection = "notes"
	Tasks    Collection = "tasks"
	Contacts Collection = "contacts"
	Finance  Collection = "finance"
)

// Collections lists every collection in menu order.
var Collections = []Collection{Notes, Tasks, Contacts, Finance}

func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCollection
}

const (
	// DateLayout is DD-MM-YYYY. Parsing uses DateParseLayout so that
	// unpadded days and months are accepted as well.
	DateLayout      = "02-01-2006"
	DateParseLayout = "2-1-2006"

	TimestampLayout = "02-01-2006 15:04:05"
)

// NextID returns max(existing ids)+1, or 1 for an empty collection.
// Imported ids may be zero or negative and count like any other.
func NextID[T Record[T]](records []T) int {
	if len(records) == 0 {
		return 1
	}
	top := records[0].RecordID()
	for _, r := range records[1:] {
		if id := r.RecordID(); id > top {
			top = id
		}
	}
	return top + 1
}
