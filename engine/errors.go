package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	ErrUnknownEngine     = errors.New("unknown engine")
	ErrNoEngineAvailable = errors.New("no engine command available")
)

// CLINotFoundError indicates the backend CLI binary was not found.
type CLINotFoundError struct {
	Cause   error
	Command string
}

func (e *CLINotFoundError) Error() string {
	return fmt.Sprintf("CLI command not found: %q: %v", e.Command, e.Cause)
}

func (e *CLINotFoundError) Unwrap() error {
	return e.Cause
}

// ProcessError represents a process-level failure before or during execution.
type ProcessError struct {
	Cause   error
	Message string
}

func (e *ProcessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("process error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("process error: %s", e.Message)
}

func (e *ProcessError) Unwrap() error {
	return e.Cause
}
