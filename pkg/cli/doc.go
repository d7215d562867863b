/*
Package cli provides command-line utilities for steerlint.

The cli package includes output formatters, command error types, and signal
handling used by the steerlint command.

Output Formatting:

Command results can be rendered as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Exit Codes:

Commands return a CommandError when the run failed, or a SilentError when
diagnostics have already been printed and only the non-zero exit code is
still needed.

Signal Handling:

For shutting down the watch command on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should stop on interrupt
*/
package cli
