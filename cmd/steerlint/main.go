// Steerlint validates Kiro steering documents: markdown files with YAML
// frontmatter that carry authoring rules for the assistant.
//
// It checks frontmatter fields and types, the category and inclusion value
// sets, tag lists, referenced files, and the required body sections.
//
// Usage:
//
//	# Validate a single document
//	steerlint steering/error-handling.md
//
//	# Validate every .md file under a directory
//	steerlint steering/
//
//	# Machine-readable report for CI
//	steerlint --format json steering/
//
//	# Revalidate on every change
//	steerlint watch steering/
//
//	# Show version information
//	steerlint version
//
// The exit code is 0 when every checked document is valid and 1 otherwise.
package main

func main() {
	Execute()
}
