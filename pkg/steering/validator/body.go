package validator

import (
	"fmt"
	"regexp"
	"strings"

	steeringerrors "kiro-hq/steerlint/pkg/steering/errors"
)

// validateBody checks the markdown body for the required level-2 sections.
// An empty body is reported once and suppresses the section checks.
func (v *Validator) validateBody(errs *steeringerrors.ErrorList, path string, body string) {
	if strings.TrimSpace(body) == "" {
		errs.AddError(path, steeringerrors.ErrorTypeEmptyBody,
			"Document body cannot be empty")
		return
	}

	for i, section := range v.schema.RequiredSections {
		if !v.sectionPatterns[i].MatchString(body) {
			errs.AddError(path, steeringerrors.ErrorTypeMissingSection,
				fmt.Sprintf("Required section '%s' is missing", section))
		}
	}
}

// sectionPattern matches a level-2 heading introducing the named section,
// case-insensitively: the "##" marker, whitespace, then the phrase.
func sectionPattern(section string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)##\s+` + regexp.QuoteMeta(section))
}
