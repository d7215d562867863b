package document

// FieldType is the expected YAML type of a frontmatter field.
type FieldType int

const (
	// TypeString expects a YAML scalar decoded as a Go string.
	TypeString FieldType = iota
	// TypeList expects a YAML sequence.
	TypeList
)

// String returns the type name used in error messages.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// Field pairs a frontmatter key with its expected type.
type Field struct {
	Name string
	Type FieldType
}

// Schema describes the steering-document convention: which frontmatter
// fields must or may appear, the closed value sets, and the body sections
// every document must carry. DefaultSchema returns the standard convention;
// a rules file may extend the enumerations and section list.
type Schema struct {
	RequiredFields   []Field
	OptionalFields   []Field
	Categories       []string
	InclusionModes   []string
	RequiredSections []string
}

// DefaultSchema returns the built-in steering-document schema.
func DefaultSchema() *Schema {
	return &Schema{
		RequiredFields: []Field{
			{Name: "title", Type: TypeString},
			{Name: "description", Type: TypeString},
			{Name: "category", Type: TypeString},
			{Name: "tags", Type: TypeList},
			{Name: "inclusion", Type: TypeString},
		},
		OptionalFields: []Field{
			{Name: "author", Type: TypeString},
			{Name: "version", Type: TypeString},
			{Name: "kiro_version", Type: TypeString},
			{Name: "dependencies", Type: TypeList},
			{Name: "file_references", Type: TypeList},
		},
		Categories: []string{
			"code-quality",
			"testing",
			"security",
			"frameworks",
			"workflows",
		},
		InclusionModes: []string{
			"always",
			"fileMatch",
			"manual",
		},
		RequiredSections: []string{
			"Core Principle",
			"How Kiro Will Write",
			"What This Prevents",
		},
	}
}

// HasCategory reports whether name is in the schema's category set.
func (s *Schema) HasCategory(name string) bool {
	return contains(s.Categories, name)
}

// HasInclusionMode reports whether name is in the schema's inclusion set.
func (s *Schema) HasInclusionMode(name string) bool {
	return contains(s.InclusionModes, name)
}

func contains(values []string, name string) bool {
	for _, v := range values {
		if v == name {
			return true
		}
	}
	return false
}
