package document

// TypeName returns the YAML-facing name of a decoded value's type, for use
// in error messages ("field 'tags' must be of type list, got string").
func TypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return "unknown"
	}
}

// Frontmatter holds the decoded YAML frontmatter of a steering document.
// The decoded value can be any YAML type; dependent checks must first
// establish that it is a mapping.
type Frontmatter struct {
	// Value is the decoded YAML value, not necessarily a mapping.
	Value any

	// KeyLines maps top-level mapping keys to their 1-based file line,
	// counted in the original document (the opening delimiter is line 1).
	// Empty when Value is not a mapping.
	KeyLines map[string]int
}

// Mapping returns the frontmatter as a key/value mapping, or false when the
// decoded value is some other YAML type.
func (f *Frontmatter) Mapping() (map[string]any, bool) {
	m, ok := f.Value.(map[string]any)
	return m, ok
}

// Line returns the file line of a top-level key, or 0 when unknown.
func (f *Frontmatter) Line(key string) int {
	if f == nil {
		return 0
	}
	return f.KeyLines[key]
}

// Document is the split form of a steering file. Frontmatter is nil when the
// file has no parseable frontmatter block; Body always carries whatever text
// remains so structural checks can still run.
type Document struct {
	Path        string
	Frontmatter *Frontmatter
	Body        string
}
