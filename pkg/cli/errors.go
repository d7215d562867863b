package cli

import "fmt"

// CommandError represents a failed command execution. The root command
// translates it into a non-zero exit code.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// SilentError signals a non-zero exit without further output: the command
// has already written its own diagnostics.
type SilentError struct {
	Err error
}

func (e *SilentError) Error() string {
	if e.Err == nil {
		return "command failed"
	}
	return e.Err.Error()
}

func (e *SilentError) Unwrap() error {
	return e.Err
}

// NewSilentError wraps err so the root command exits non-zero quietly.
func NewSilentError(err error) *SilentError {
	return &SilentError{Err: err}
}
