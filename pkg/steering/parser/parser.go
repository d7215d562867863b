package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"kiro-hq/steerlint/pkg/steering/document"
	steeringerrors "kiro-hq/steerlint/pkg/steering/errors"
)

const delimiter = "---"

// Extract splits raw steering-document content into frontmatter and body.
//
// Structural failures are reported as findings on errs, never returned: a
// missing opening delimiter yields MISSING_FRONTMATTER, an unclosed block
// yields INVALID_FRONTMATTER, and undecodable YAML yields YAML_SYNTAX_ERROR.
// In every failure case the returned frontmatter is nil and the body carries
// whatever text was recovered, so body-structure checks can still run.
//
// A frontmatter block that decodes to null (an empty block) is treated as
// absent without a finding.
func Extract(path, content string, errs *steeringerrors.ErrorList) (*document.Frontmatter, string) {
	if !strings.HasPrefix(content, delimiter) {
		errs.AddError(path, steeringerrors.ErrorTypeMissingFrontmatter,
			"File must start with YAML frontmatter")
		return nil, content
	}

	lines := strings.Split(content, "\n")
	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			closing = i
			break
		}
	}

	if closing == -1 {
		errs.AddError(path, steeringerrors.ErrorTypeInvalidFrontmatter,
			"Frontmatter not properly closed with ---")
		return nil, content
	}

	frontmatterText := strings.Join(lines[1:closing], "\n")
	body := strings.Join(lines[closing+1:], "\n")

	frontmatter, err := decode(frontmatterText)
	if err != nil {
		errs.AddError(path, steeringerrors.ErrorTypeYAMLSyntax,
			fmt.Sprintf("Invalid YAML syntax: %v", err))
		return nil, body
	}

	return frontmatter, body
}

// decode parses frontmatter text with the YAML node API so top-level keys
// keep their line numbers. It returns nil for an empty or null document.
func decode(text string) (*document.Frontmatter, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return nil, err
	}

	if node.Kind == 0 || len(node.Content) == 0 {
		return nil, nil
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	return &document.Frontmatter{
		Value:    value,
		KeyLines: keyLines(&node),
	}, nil
}

// keyLines maps the root mapping's keys to 1-based file lines. Node lines
// are relative to the frontmatter text, which starts on file line 2, so each
// is offset by the opening delimiter line.
func keyLines(node *yaml.Node) map[string]int {
	root := node.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	lines := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		lines[key.Value] = key.Line + 1
	}
	return lines
}
