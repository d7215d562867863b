// Package document defines the data model for steering documents: the split
// frontmatter/body form, the frontmatter field schema, and the closed value
// sets for categories and inclusion modes.
//
// A steering document is a markdown file opening with a YAML frontmatter
// block delimited by "---" lines:
//
//	---
//	title: Error Handling
//	description: How errors are reported
//	category: code-quality
//	tags: [errors, style]
//	inclusion: always
//	---
//
//	## Core Principle
//	...
//
// The package carries no validation logic; see pkg/steering/validator.
package document
