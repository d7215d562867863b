package validator

import (
	"fmt"
	"strings"

	"kiro-hq/steerlint/pkg/steering/document"
	steeringerrors "kiro-hq/steerlint/pkg/steering/errors"
)

// validateFrontmatter runs the field-level checks. The checks are
// independent and cumulative: one document can trigger many codes in a
// single pass. The only short-circuit is the mapping precondition.
func (v *Validator) validateFrontmatter(errs *steeringerrors.ErrorList, path string, fm *document.Frontmatter) {
	mapping, ok := fm.Mapping()
	if !ok {
		errs.AddError(path, steeringerrors.ErrorTypeInvalidFrontmatter,
			"Frontmatter must be a YAML mapping")
		return
	}

	// Required fields: a missing field suppresses the type check for that
	// field, nothing else.
	for _, field := range v.schema.RequiredFields {
		value, present := mapping[field.Name]
		if !present {
			errs.AddError(path, steeringerrors.ErrorTypeMissingRequiredField,
				fmt.Sprintf("Required field '%s' is missing", field.Name))
			continue
		}
		if !matchesType(value, field.Type) {
			errs.AddErrorAt(path, steeringerrors.ErrorTypeInvalidFieldType,
				fmt.Sprintf("Field '%s' must be of type %s, got %s",
					field.Name, field.Type, document.TypeName(value)),
				fm.Line(field.Name))
		}
	}

	v.validateCategory(errs, path, fm, mapping)
	v.validateInclusion(errs, path, fm, mapping)
	v.validateTags(errs, path, fm, mapping)

	for _, field := range v.schema.OptionalFields {
		value, present := mapping[field.Name]
		if !present {
			continue
		}
		if !matchesType(value, field.Type) {
			errs.AddErrorAt(path, steeringerrors.ErrorTypeInvalidFieldType,
				fmt.Sprintf("Field '%s' must be of type %s, got %s",
					field.Name, field.Type, document.TypeName(value)),
				fm.Line(field.Name))
		}
	}
}

func (v *Validator) validateCategory(errs *steeringerrors.ErrorList, path string, fm *document.Frontmatter, mapping map[string]any) {
	raw, present := mapping["category"]
	if !present {
		return
	}
	if name, ok := raw.(string); ok && v.schema.HasCategory(name) {
		return
	}
	errs.AddErrorAt(path, steeringerrors.ErrorTypeInvalidCategory,
		fmt.Sprintf("Category '%v' is not valid. Must be one of: %s",
			raw, strings.Join(v.schema.Categories, ", ")),
		fm.Line("category"))
}

func (v *Validator) validateInclusion(errs *steeringerrors.ErrorList, path string, fm *document.Frontmatter, mapping map[string]any) {
	raw, present := mapping["inclusion"]
	if !present {
		return
	}
	if mode, ok := raw.(string); ok && v.schema.HasInclusionMode(mode) {
		return
	}
	errs.AddErrorAt(path, steeringerrors.ErrorTypeInvalidInclusion,
		fmt.Sprintf("Inclusion '%v' is not valid. Must be one of: %s",
			raw, strings.Join(v.schema.InclusionModes, ", ")),
		fm.Line("inclusion"))
}

// validateTags checks that tags is a non-empty list of strings. Exactly one
// of INVALID_TAGS and EMPTY_TAGS can fire; INVALID_TAG_TYPE fires once per
// offending element.
func (v *Validator) validateTags(errs *steeringerrors.ErrorList, path string, fm *document.Frontmatter, mapping map[string]any) {
	raw, present := mapping["tags"]
	if !present {
		return
	}
	line := fm.Line("tags")

	tags, ok := raw.([]any)
	if !ok {
		errs.AddErrorAt(path, steeringerrors.ErrorTypeInvalidTags,
			"Tags must be a list", line)
		return
	}
	if len(tags) == 0 {
		errs.AddErrorAt(path, steeringerrors.ErrorTypeEmptyTags,
			"Tags list cannot be empty", line)
		return
	}
	for i, tag := range tags {
		if _, ok := tag.(string); !ok {
			errs.AddErrorAt(path, steeringerrors.ErrorTypeInvalidTagType,
				fmt.Sprintf("Tag at index %d must be a string, got %s",
					i, document.TypeName(tag)),
				line)
		}
	}
}

func matchesType(value any, fieldType document.FieldType) bool {
	switch fieldType {
	case document.TypeString:
		_, ok := value.(string)
		return ok
	case document.TypeList:
		_, ok := value.([]any)
		return ok
	default:
		return false
	}
}
