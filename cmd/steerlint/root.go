package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"kiro-hq/steerlint/pkg/cli"
	"kiro-hq/steerlint/pkg/config"
	"kiro-hq/steerlint/pkg/logging"
	"kiro-hq/steerlint/pkg/steering/validator"
)

// Global flags, available to all subcommands.
var rootFlags struct {
	rules   string
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "steerlint <file|directory>",
	Short: "steerlint - validate Kiro steering documents",
	Long: `Steerlint checks steering documents against the steering convention:

  - YAML frontmatter with the required fields and types
  - category and inclusion values from the closed sets
  - a non-empty list of string tags
  - file_references that resolve on disk
  - the required body sections (Core Principle, How Kiro Will Write,
    What This Prevents)

Given a file it validates that file; given a directory it validates every
.md file underneath it (README.md excluded). All findings are reported;
the exit code is 1 as soon as any document has one.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and derives the process exit code from the
// result: any error, including accumulated validation findings, exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var silent *cli.SilentError
		if !errors.As(err, &silent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.rules, "rules", "", "rules file extending the steering schema")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "verbose logging")
}

// newLogger builds the operational logger. Validation output goes to
// stdout; log lines stay on stderr and are warnings-only unless --verbose.
func newLogger() (*slog.Logger, error) {
	level := "warn"
	if rootFlags.verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: logging.FormatText,
		Writer: os.Stderr,
	})
}

// newValidator builds the validator from the default schema or, when
// --rules is set, the extended one.
func newValidator(logger *slog.Logger) (*validator.Validator, error) {
	v := validator.New().WithLogger(logger)
	if rootFlags.rules == "" {
		return v, nil
	}

	schema, err := config.LoadRules(rootFlags.rules)
	if err != nil {
		return nil, err
	}
	return v.WithSchema(schema), nil
}
