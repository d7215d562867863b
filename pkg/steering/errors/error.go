package errors

import (
	"fmt"
	"strings"
)

// ErrorType categorizes a validation finding. The set is closed: every
// finding the validator can produce maps to exactly one of these codes.
type ErrorType string

const (
	ErrorTypeFileNotFound         ErrorType = "FILE_NOT_FOUND"
	ErrorTypeReadError            ErrorType = "READ_ERROR"
	ErrorTypeMissingFrontmatter   ErrorType = "MISSING_FRONTMATTER"
	ErrorTypeInvalidFrontmatter   ErrorType = "INVALID_FRONTMATTER"
	ErrorTypeYAMLSyntax           ErrorType = "YAML_SYNTAX_ERROR"
	ErrorTypeMissingRequiredField ErrorType = "MISSING_REQUIRED_FIELD"
	ErrorTypeInvalidFieldType     ErrorType = "INVALID_FIELD_TYPE"
	ErrorTypeInvalidCategory      ErrorType = "INVALID_CATEGORY"
	ErrorTypeInvalidInclusion     ErrorType = "INVALID_INCLUSION"
	ErrorTypeInvalidTags          ErrorType = "INVALID_TAGS"
	ErrorTypeEmptyTags            ErrorType = "EMPTY_TAGS"
	ErrorTypeInvalidTagType       ErrorType = "INVALID_TAG_TYPE"
	ErrorTypeMissingFileReference ErrorType = "MISSING_FILE_REFERENCE"
	ErrorTypeEmptyBody            ErrorType = "EMPTY_BODY"
	ErrorTypeMissingSection       ErrorType = "MISSING_SECTION"
	ErrorTypeDirectoryNotFound    ErrorType = "DIRECTORY_NOT_FOUND"
)

// ValidationError is a single validation finding. Findings are data, not
// control flow: the validator accumulates them and never aborts on one.
type ValidationError struct {
	Path    string    // file the finding is attributed to
	Type    ErrorType // closed-set error code
	Message string    // human-readable description
	Line    int       // file line number, 0 when no specific line is known
}

// Error implements the error interface.
// Format: "path[:line] [TYPE] message".
func (e *ValidationError) Error() string {
	location := ""
	if e.Line > 0 {
		location = fmt.Sprintf(":%d", e.Line)
	}
	return fmt.Sprintf("%s%s [%s] %s", e.Path, location, e.Type, e.Message)
}

// ErrorList accumulates validation findings for a single validation pass.
// A fresh list is created per call so no state leaks between files.
type ErrorList struct {
	Errors []*ValidationError
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*ValidationError, 0),
	}
}

// Add appends a finding to the list.
func (el *ErrorList) Add(err *ValidationError) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and appends a finding without line information.
func (el *ErrorList) AddError(path string, errType ErrorType, message string) {
	el.Add(&ValidationError{
		Path:    path,
		Type:    errType,
		Message: message,
	})
}

// AddErrorAt creates and appends a finding attributed to a specific line.
// A zero line means the line is unknown and is omitted when rendering.
func (el *ErrorList) AddErrorAt(path string, errType ErrorType, message string, line int) {
	el.Add(&ValidationError{
		Path:    path,
		Type:    errType,
		Message: message,
		Line:    line,
	})
}

// HasErrors returns true if the list contains any findings.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of findings in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// HasType returns true if the list contains a finding of the given type.
func (el *ErrorList) HasType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}

// ByType returns all findings of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*ValidationError {
	var result []*ValidationError
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// Error implements the error interface, rendering every finding on its own line.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	lines := make([]string, 0, len(el.Errors))
	for _, err := range el.Errors {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "\n")
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
