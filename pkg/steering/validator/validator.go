package validator

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"kiro-hq/steerlint/pkg/steering/document"
	steeringerrors "kiro-hq/steerlint/pkg/steering/errors"
	"kiro-hq/steerlint/pkg/steering/parser"
)

// Validator checks steering documents against a schema. It holds only
// immutable configuration; every validation call accumulates findings in a
// fresh ErrorList, so a single Validator is safe to reuse across files.
type Validator struct {
	schema          *document.Schema
	sectionPatterns []*regexp.Regexp
	logger          *slog.Logger
}

// New creates a validator with the default steering-document schema.
func New() *Validator {
	v := &Validator{logger: slog.Default()}
	return v.WithSchema(document.DefaultSchema())
}

// WithSchema replaces the validation schema.
func (v *Validator) WithSchema(schema *document.Schema) *Validator {
	v.schema = schema
	v.sectionPatterns = make([]*regexp.Regexp, 0, len(schema.RequiredSections))
	for _, section := range schema.RequiredSections {
		v.sectionPatterns = append(v.sectionPatterns, sectionPattern(section))
	}
	return v
}

// WithLogger replaces the operational logger. Findings are never logged,
// only returned.
func (v *Validator) WithLogger(logger *slog.Logger) *Validator {
	if logger != nil {
		v.logger = logger
	}
	return v
}

// Schema returns the schema the validator checks against.
func (v *Validator) Schema() *document.Schema {
	return v.schema
}

// ValidateFile validates a single steering document and returns every
// finding. An empty list means the document is valid.
//
// A nonexistent path yields a single FILE_NOT_FOUND finding; a path that
// exists but cannot be read as UTF-8 text yields a single READ_ERROR. In
// both cases no further checks run.
func (v *Validator) ValidateFile(path string) *steeringerrors.ErrorList {
	errs := steeringerrors.NewErrorList()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			errs.AddError(path, steeringerrors.ErrorTypeFileNotFound, "File does not exist")
		} else {
			errs.AddError(path, steeringerrors.ErrorTypeReadError,
				fmt.Sprintf("Cannot read file: %v", err))
		}
		return errs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		errs.AddError(path, steeringerrors.ErrorTypeReadError,
			fmt.Sprintf("Cannot read file: %v", err))
		return errs
	}
	if !utf8.Valid(data) {
		errs.AddError(path, steeringerrors.ErrorTypeReadError,
			"Cannot read file: content is not valid UTF-8 text")
		return errs
	}

	frontmatter, body := parser.Extract(path, string(data), errs)
	if frontmatter != nil {
		v.validateFrontmatter(errs, path, frontmatter)
		v.validateFileReferences(errs, path, frontmatter)
	}
	v.validateBody(errs, path, body)

	v.logger.Debug("validated file", "path", path, "findings", errs.Count())
	return errs
}

// ValidateDirectory validates every eligible markdown file under root,
// recursively. Eligible files end in ".md" (case-sensitive) and are not
// named README.md in any case. The result maps each visited file to its
// finding list; clean files appear with an empty list.
//
// A nonexistent root yields a single-entry result keyed by the root path
// with one DIRECTORY_NOT_FOUND finding.
func (v *Validator) ValidateDirectory(root string) map[string]*steeringerrors.ErrorList {
	results := make(map[string]*steeringerrors.ErrorList)

	if _, err := os.Stat(root); err != nil {
		errs := steeringerrors.NewErrorList()
		errs.AddError(root, steeringerrors.ErrorTypeDirectoryNotFound, "Directory does not exist")
		results[root] = errs
		return results
	}

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			v.logger.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") || strings.EqualFold(name, "README.md") {
			return nil
		}
		results[path] = v.ValidateFile(path)
		return nil
	})

	return results
}

// SortedPaths returns the result keys in lexical order, for deterministic
// reporting.
func SortedPaths(results map[string]*steeringerrors.ErrorList) []string {
	paths := make([]string, 0, len(results))
	for path := range results {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
