package idf

import "strings"

// Row is a single tagged record. Fields does not include the tag.
type Row struct {
	Tag    string
	Fields []string
	// Line is the 1-based line the row starts on, zero for rows built in code.
	Line int
}

// NewRow builds a row from a tag and its positional fields.
func NewRow(tag string, fields ...string) Row {
	return Row{Tag: tag, Fields: fields}
}

// Is reports whether the row's tag matches tag, ignoring case.
func (r Row) Is(tag string) bool {
	return strings.EqualFold(r.Tag, tag)
}

// Name returns the first field, which is the object name for every named
// object type. Rows without fields have no name.
func (r Row) Name() string {
	if len(r.Fields) == 0 {
		return ""
	}
	return r.Fields[0]
}

// Field returns the i-th field or "" when the row is shorter.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Values returns the tag followed by every field after the name. This is the
// positional view definition parsers work on: index 0 is always the tag.
func (r Row) Values() []string {
	values := make([]string, 0, len(r.Fields))
	values = append(values, r.Tag)
	if len(r.Fields) > 1 {
		values = append(values, r.Fields[1:]...)
	}
	return values
}
