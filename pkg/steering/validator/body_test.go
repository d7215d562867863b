package validator

import (
	"testing"

	steeringerrors "kiro-hq/steerlint/pkg/steering/errors"
)

func checkBody(v *Validator, body string) *steeringerrors.ErrorList {
	errs := steeringerrors.NewErrorList()
	v.validateBody(errs, "test.md", body)
	return errs
}

const completeBody = `
## Core Principle

Text.

## How Kiro Will Write

Text.

## What This Prevents

Text.
`

func TestValidateBodyComplete(t *testing.T) {
	if errs := checkBody(New(), completeBody); errs.HasErrors() {
		t.Errorf("complete body produced findings: %v", errs.Error())
	}
}

func TestValidateBodyEmpty(t *testing.T) {
	for _, body := range []string{"", "   \n\t\n  "} {
		errs := checkBody(New(), body)
		if errs.Count() != 1 || !errs.HasType(steeringerrors.ErrorTypeEmptyBody) {
			t.Errorf("body %q: want exactly one EMPTY_BODY, got %v", body, errs.Error())
		}
	}
}

func TestValidateBodyEmptySuppressesSectionChecks(t *testing.T) {
	errs := checkBody(New(), "  \n ")
	if errs.HasType(steeringerrors.ErrorTypeMissingSection) {
		t.Errorf("empty body must not also report sections: %v", errs.Error())
	}
}

func TestValidateBodyMissingSingleSection(t *testing.T) {
	body := `
## Core Principle

Text.

## How Kiro Will Write

Text.
`
	errs := checkBody(New(), body)

	matches := errs.ByType(steeringerrors.ErrorTypeMissingSection)
	if len(matches) != 1 {
		t.Fatalf("want exactly one MISSING_SECTION, got %v", errs.Error())
	}
	want := "Required section 'What This Prevents' is missing"
	if matches[0].Message != want {
		t.Errorf("message = %q, want %q", matches[0].Message, want)
	}
}

func TestValidateBodyMissingAllSections(t *testing.T) {
	errs := checkBody(New(), "Just prose, no headings.")
	if got := len(errs.ByType(steeringerrors.ErrorTypeMissingSection)); got != 3 {
		t.Errorf("want 3 MISSING_SECTION findings, got %d: %v", got, errs.Error())
	}
}

func TestValidateBodySectionsCaseInsensitive(t *testing.T) {
	body := `
## core principle

Text.

## HOW KIRO WILL WRITE

Text.

## what this prevents

Text.
`
	if errs := checkBody(New(), body); errs.HasErrors() {
		t.Errorf("heading match is case-insensitive: %v", errs.Error())
	}
}

func TestValidateBodyHeadingSpacing(t *testing.T) {
	// Any whitespace between the marker and the phrase is accepted.
	body := "##   Core Principle\n##\tHow Kiro Will Write\n## What This Prevents\n"
	if errs := checkBody(New(), body); errs.HasErrors() {
		t.Errorf("flexible heading whitespace should match: %v", errs.Error())
	}
}

func TestValidateBodyMarkerWithoutSpace(t *testing.T) {
	body := "##Core Principle\n## How Kiro Will Write\n## What This Prevents\n"
	errs := checkBody(New(), body)

	matches := errs.ByType(steeringerrors.ErrorTypeMissingSection)
	if len(matches) != 1 {
		t.Fatalf("heading without whitespace must not match: %v", errs.Error())
	}
}
