// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for all CLI commands in corrbench.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never just print and return nil)
//   - Let the caller decide how to display errors
//   - Use structured error types for better error handling
//
// ERROR HANDLING: Errors must not be silently ignored

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitDataError indicates a malformed or unreadable source file
	ExitDataError = 4
	// ExitNotFoundError indicates a resource was not found
	ExitNotFoundError = 5
)

// =============================================================================
// ERROR TYPES FOR STRUCTURED ERROR HANDLING
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "export", "diff")
	Action  string // Action being performed (e.g., "write", "load")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a structured command error.
func NewCommandError(command, action, reason string, err error) *CommandError {
	return &CommandError{Command: command, Action: action, Reason: reason, Err: err}
}

// UsageError represents invalid command usage.
type UsageError struct {
	Command string
	Message string
	Usage   string // Short usage hint shown below the message
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a usage error with a hint.
func NewUsageError(command, message, usage string) *UsageError {
	return &UsageError{Command: command, Message: message, Usage: usage}
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "configuration"):
		return ExitConfigError
	case os.IsNotExist(err) || strings.Contains(msg, "no such file"):
		return ExitNotFoundError
	case strings.Contains(msg, "csv") || strings.Contains(msg, "column"):
		return ExitDataError
	default:
		return ExitGeneralError
	}
}

// PrintError prints an error to stderr in a consistent format.
// Usage errors include their hint line.
func PrintError(err error) {
	if err == nil {
		return
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", usageErr.Message)
		if usageErr.Usage != "" {
			fmt.Fprintf(os.Stderr, "Usage: %s\n", usageErr.Usage)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
