// Package config loads the optional steerlint rules file.
//
// The tool needs no configuration to run; the rules file exists for teams
// that extend the steering convention with their own categories, inclusion
// modes, or required sections:
//
//	extra_categories:
//	  - documentation
//	extra_sections:
//	  - Examples
//
// Extensions are additive. The built-in schema values stay valid whatever
// the rules file says, and there is no environment-variable configuration.
package config
