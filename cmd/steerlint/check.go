package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"kiro-hq/steerlint/pkg/cli"
	steeringerrors "kiro-hq/steerlint/pkg/steering/errors"
	"kiro-hq/steerlint/pkg/steering/validator"
)

var checkFlags struct {
	format string
}

func init() {
	rootCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stdout, cmd.UsageString())
		return cli.NewSilentError(errors.New("no file or directory supplied"))
	}
	if len(args) > 1 {
		return fmt.Errorf("expected a single file or directory, got %d arguments", len(args))
	}

	format, err := cli.ParseFormat(checkFlags.format)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	v, err := newValidator(logger)
	if err != nil {
		return err
	}

	target := args[0]
	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		return checkDirectory(v, target, format)
	case err == nil:
		return checkFile(v, target, format)
	default:
		return fmt.Errorf("%s is not a valid file or directory", target)
	}
}

func checkFile(v *validator.Validator, target string, format cli.OutputFormat) error {
	errs := v.ValidateFile(target)

	if format == cli.FormatJSON {
		return outputReport(os.Stdout, newReport([]fileResult{newFileResult(target, errs)}))
	}

	if errs.HasErrors() {
		fmt.Printf("Validation errors in %s:\n", target)
		for _, e := range errs.Errors {
			fmt.Printf("  %s\n", e.Error())
		}
		return cli.NewSilentError(fmt.Errorf("%d validation error(s)", errs.Count()))
	}

	fmt.Printf("✓ %s is valid\n", target)
	return nil
}

func checkDirectory(v *validator.Validator, target string, format cli.OutputFormat) error {
	results := v.ValidateDirectory(target)

	if format == cli.FormatJSON {
		fileResults := make([]fileResult, 0, len(results))
		for _, path := range validator.SortedPaths(results) {
			fileResults = append(fileResults, newFileResult(path, results[path]))
		}
		return outputReport(os.Stdout, newReport(fileResults))
	}

	total := printResults(os.Stdout, results)
	if total > 0 {
		fmt.Printf("\nTotal: %d validation errors found\n", total)
		return cli.NewSilentError(fmt.Errorf("%d validation error(s)", total))
	}
	fmt.Printf("\n✓ All files are valid\n")
	return nil
}

// printResults renders per-file status lines in path order and returns the
// total finding count.
func printResults(w io.Writer, results map[string]*steeringerrors.ErrorList) int {
	total := 0
	for _, path := range validator.SortedPaths(results) {
		errs := results[path]
		if errs.HasErrors() {
			fmt.Fprintf(w, "Validation errors in %s:\n", path)
			for _, e := range errs.Errors {
				fmt.Fprintf(w, "  %s\n", e.Error())
			}
			total += errs.Count()
		} else {
			fmt.Fprintf(w, "✓ %s is valid\n", path)
		}
	}
	return total
}

// fileResult is the per-file entry of a JSON report.
type fileResult struct {
	File   string    `json:"file"`
	Valid  bool      `json:"valid"`
	Errors []finding `json:"errors,omitempty"`
}

// finding is the JSON form of a single validation finding.
type finding struct {
	Line    int    `json:"line,omitempty"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// report is the JSON output envelope.
type report struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Results     []fileResult `json:"results"`
	TotalErrors int          `json:"total_errors"`
}

func newFileResult(path string, errs *steeringerrors.ErrorList) fileResult {
	result := fileResult{
		File:  path,
		Valid: !errs.HasErrors(),
	}
	for _, e := range errs.Errors {
		result.Errors = append(result.Errors, finding{
			Line:    e.Line,
			Type:    string(e.Type),
			Message: e.Message,
		})
	}
	return result
}

func newReport(results []fileResult) report {
	total := 0
	for _, r := range results {
		total += len(r.Errors)
	}
	return report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Results:     results,
		TotalErrors: total,
	}
}

// outputReport writes the JSON report; the exit code still reflects the
// finding count.
func outputReport(w io.Writer, rep report) error {
	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(w, rep); err != nil {
		return err
	}
	if rep.TotalErrors > 0 {
		return cli.NewSilentError(fmt.Errorf("%d validation error(s)", rep.TotalErrors))
	}
	return nil
}
