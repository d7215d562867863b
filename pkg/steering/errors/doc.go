// Package errors provides the validation finding model for steering documents.
//
// Findings are values, not exceptions: each rule violation becomes one
// ValidationError carrying a stable code from a closed set, and the validator
// accumulates them in an ErrorList instead of returning early. Callers decide
// what a non-empty list means (the CLI turns it into output lines and a
// non-zero exit code).
//
// Accumulate findings:
//
//	errs := errors.NewErrorList()
//	errs.AddError(path, errors.ErrorTypeMissingRequiredField, "required field 'title' is missing")
//	errs.AddErrorAt(path, errors.ErrorTypeInvalidCategory, "category 'bogus' is not valid", 4)
//
//	if errs.HasErrors() {
//	    for _, e := range errs.Errors {
//	        fmt.Println(e.Error()) // path[:line] [TYPE] message
//	    }
//	}
package errors
