// Package parser extracts YAML frontmatter from steering documents.
//
// The split is line-based: the document must open with a "---" line and the
// frontmatter runs to the next line that is exactly "---" (ignoring
// surrounding whitespace). Text after the closing delimiter is the body,
// with blank lines preserved. The frontmatter text is decoded through the
// yaml.v3 node API so that findings about individual keys can carry file
// line numbers.
//
// Extraction never fails hard. Structural problems become typed findings on
// the caller's error list and the body is still returned, because
// body-structure checks must run even when the frontmatter is broken.
package parser
