package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"kiro-hq/steerlint/pkg/steering/document"
)

// Rules is the optional rules-file surface. Every list extends the built-in
// steering schema; the built-in values always remain valid so a rules file
// can only widen the convention, never silently break existing documents.
type Rules struct {
	// ExtraCategories adds entries to the valid category set.
	ExtraCategories []string `yaml:"extra_categories"`

	// ExtraInclusionModes adds entries to the valid inclusion set.
	ExtraInclusionModes []string `yaml:"extra_inclusion_modes"`

	// ExtraSections adds required body sections beyond the standard three.
	ExtraSections []string `yaml:"extra_sections"`
}

// LoadRules loads a rules file and returns the resulting schema. The
// sequence is read, unmarshal, merge onto the defaults, validate.
func LoadRules(path string) (*document.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %q: %w", path, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %q: %w", path, err)
	}

	if err := validate(&rules); err != nil {
		return nil, fmt.Errorf("rules file %q invalid: %w", path, err)
	}

	return rules.Schema(), nil
}

// Schema merges the rules onto the default steering schema.
func (r *Rules) Schema() *document.Schema {
	schema := document.DefaultSchema()
	schema.Categories = appendNew(schema.Categories, r.ExtraCategories)
	schema.InclusionModes = appendNew(schema.InclusionModes, r.ExtraInclusionModes)
	schema.RequiredSections = appendNew(schema.RequiredSections, r.ExtraSections)
	return schema
}

func validate(rules *Rules) error {
	if err := validateEntries("extra_categories", rules.ExtraCategories); err != nil {
		return err
	}
	if err := validateEntries("extra_inclusion_modes", rules.ExtraInclusionModes); err != nil {
		return err
	}
	return validateEntries("extra_sections", rules.ExtraSections)
}

func validateEntries(field string, entries []string) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("%s contains an empty entry", field)
		}
		if _, dup := seen[entry]; dup {
			return fmt.Errorf("%s contains duplicate entry %q", field, entry)
		}
		seen[entry] = struct{}{}
	}
	return nil
}

func appendNew(base, extra []string) []string {
	existing := make(map[string]struct{}, len(base))
	for _, v := range base {
		existing[v] = struct{}{}
	}
	for _, v := range extra {
		if _, ok := existing[v]; !ok {
			base = append(base, v)
		}
	}
	return base
}
