package intent

// Intent is the detected kind of a search query.
type Intent string

// Search intent constants.
const (
	Title  Intent = "title"
	Author Intent = "author"
	Topic  Intent = "topic"
	// ISBN queries are a bare 10 or 13 character book number.
	ISBN    Intent = "isbn"
	General Intent = "general"
)

// IsValid checks if the intent is one of the supported values.
func (i Intent) IsValid() bool {
	return i == Title || i == Author || i == Topic || i == ISBN || i == General
}
