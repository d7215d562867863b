// Package validator checks steering documents against the steering schema.
//
// Validation is a single sequential pass per file: extract the frontmatter,
// run the field checks, resolve file references, then check the body
// structure. Findings accumulate in an ErrorList; no check aborts the pass
// except the stated preconditions (frontmatter must be a mapping before
// field checks run, an empty body suppresses section checks).
//
// Validate one file:
//
//	v := validator.New()
//	errs := v.ValidateFile("steering/error-handling.md")
//	for _, e := range errs.Errors {
//	    fmt.Println(e.Error())
//	}
//
// Validate a tree:
//
//	results := v.ValidateDirectory("steering")
//	for _, path := range validator.SortedPaths(results) {
//	    fmt.Println(path, results[path].Count())
//	}
//
// The validator keeps no per-call state, so one instance can validate any
// number of files.
package validator
