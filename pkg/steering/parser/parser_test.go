package parser

import (
	"testing"

	steeringerrors "kiro-hq/steerlint/pkg/steering/errors"
)

func TestExtractValidDocument(t *testing.T) {
	content := `---
title: Error Handling
tags:
  - errors
---

## Core Principle

Body text.
`

	errs := steeringerrors.NewErrorList()
	fm, body := Extract("test.md", content, errs)

	if errs.HasErrors() {
		t.Fatalf("unexpected findings: %v", errs.Error())
	}
	if fm == nil {
		t.Fatal("frontmatter should be present")
	}

	mapping, ok := fm.Mapping()
	if !ok {
		t.Fatalf("frontmatter should be a mapping, got %#v", fm.Value)
	}
	if mapping["title"] != "Error Handling" {
		t.Errorf("title = %v, want %q", mapping["title"], "Error Handling")
	}
	tags, ok := mapping["tags"].([]any)
	if !ok || len(tags) != 1 || tags[0] != "errors" {
		t.Errorf("tags = %#v, want [errors]", mapping["tags"])
	}

	if body != "\n## Core Principle\n\nBody text.\n" {
		t.Errorf("body = %q, blank lines and trailing newline should be preserved", body)
	}
}

func TestExtractKeyLines(t *testing.T) {
	content := "---\ntitle: x\ndescription: y\ncategory: testing\n---\nbody"

	errs := steeringerrors.NewErrorList()
	fm, _ := Extract("test.md", content, errs)
	if fm == nil {
		t.Fatal("frontmatter should be present")
	}

	// The opening delimiter is file line 1, so 'title' sits on line 2.
	if got := fm.Line("title"); got != 2 {
		t.Errorf("Line(title) = %d, want 2", got)
	}
	if got := fm.Line("category"); got != 4 {
		t.Errorf("Line(category) = %d, want 4", got)
	}
	if got := fm.Line("absent"); got != 0 {
		t.Errorf("Line(absent) = %d, want 0", got)
	}
}

func TestExtractMissingOpeningDelimiter(t *testing.T) {
	content := "# Just markdown\n\n## Core Principle\n"

	errs := steeringerrors.NewErrorList()
	fm, body := Extract("test.md", content, errs)

	if fm != nil {
		t.Error("frontmatter should be absent")
	}
	if errs.Count() != 1 || !errs.HasType(steeringerrors.ErrorTypeMissingFrontmatter) {
		t.Fatalf("want exactly one MISSING_FRONTMATTER, got %v", errs.Error())
	}
	if body != content {
		t.Errorf("body should be the whole content, got %q", body)
	}
}

func TestExtractUnclosedFrontmatter(t *testing.T) {
	content := "---\ntitle: x\ndescription: y\n"

	errs := steeringerrors.NewErrorList()
	fm, body := Extract("test.md", content, errs)

	if fm != nil {
		t.Error("frontmatter should be absent")
	}
	if errs.Count() != 1 || !errs.HasType(steeringerrors.ErrorTypeInvalidFrontmatter) {
		t.Fatalf("want exactly one INVALID_FRONTMATTER, got %v", errs.Error())
	}
	if body != content {
		t.Errorf("body should be the whole content, got %q", body)
	}
}

func TestExtractInvalidYAML(t *testing.T) {
	content := "---\ntitle: [unclosed\n---\nbody text\n"

	errs := steeringerrors.NewErrorList()
	fm, body := Extract("test.md", content, errs)

	if fm != nil {
		t.Error("frontmatter should be absent on YAML errors")
	}
	if !errs.HasType(steeringerrors.ErrorTypeYAMLSyntax) {
		t.Fatalf("want YAML_SYNTAX_ERROR, got %v", errs.Error())
	}
	// The body after the closing delimiter is still recovered so the
	// structural checks can run.
	if body != "body text\n" {
		t.Errorf("body = %q, want %q", body, "body text\n")
	}
}

func TestExtractEmptyFrontmatterIsAbsent(t *testing.T) {
	content := "---\n---\nbody\n"

	errs := steeringerrors.NewErrorList()
	fm, body := Extract("test.md", content, errs)

	if fm != nil {
		t.Errorf("empty frontmatter should decode to absent, got %#v", fm.Value)
	}
	if errs.HasErrors() {
		t.Errorf("empty frontmatter is not a finding: %v", errs.Error())
	}
	if body != "body\n" {
		t.Errorf("body = %q, want %q", body, "body\n")
	}
}

func TestExtractNonMappingFrontmatter(t *testing.T) {
	content := "---\n- just\n- a list\n---\nbody\n"

	errs := steeringerrors.NewErrorList()
	fm, _ := Extract("test.md", content, errs)

	if errs.HasErrors() {
		t.Fatalf("extraction itself should not flag non-mapping values: %v", errs.Error())
	}
	if fm == nil {
		t.Fatal("frontmatter value should be returned even when not a mapping")
	}
	if _, ok := fm.Mapping(); ok {
		t.Error("Mapping() should be false for a sequence")
	}
	if fm.Line("anything") != 0 {
		t.Error("key lines are only tracked for mappings")
	}
}

func TestExtractClosingDelimiterWithWhitespace(t *testing.T) {
	content := "---\ntitle: x\n  ---  \nbody\n"

	errs := steeringerrors.NewErrorList()
	fm, body := Extract("test.md", content, errs)

	if errs.HasErrors() {
		t.Fatalf("whitespace around the closing delimiter is allowed: %v", errs.Error())
	}
	if fm == nil {
		t.Fatal("frontmatter should be present")
	}
	if body != "body\n" {
		t.Errorf("body = %q, want %q", body, "body\n")
	}
}
