// Package errors provides standardized error handling for trygo.
// It defines the error kinds the launcher can actually hit, helpers for
// consistent creation and wrapping, and re-exports of the stdlib
// inspection functions so callers only import one errors package.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Path error kinds
	PathNotFound
	PathAccessDenied
	CreateFailed
	RemoveFailed
	// Config error kinds
	InvalidConfig
	ConfigWriteFailed
	// Setup error kinds (terminal, shell integration)
	TerminalSetupFailed
	ShellSetupFailed
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// PathError represents errors tied to a filesystem path
type PathError struct {
	ApplicationError
	path string
}

// NewPathError creates a new path error
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the filesystem path associated with the error
func (e *PathError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// SetupError represents failures while preparing the session: entering
// raw mode, writing shell integration files, patching RC files.
type SetupError struct {
	ApplicationError
	stage string
}

// NewSetupError creates a new setup error
func NewSetupError(msg string, stage string, kind ErrorKind, err error) *SetupError {
	return &SetupError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		stage: stage,
	}
}

// Error returns the setup error message
func (e *SetupError) Error() string {
	if e.stage != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.stage, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.stage)
	}
	return e.ApplicationError.Error()
}

// Stage returns the setup stage associated with the error
func (e *SetupError) Stage() string {
	return e.stage
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsCreateFailed checks if the error is a directory creation failure
func IsCreateFailed(err error) bool {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Kind() == CreateFailed
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsSetupError checks if the error is a setup error
func IsSetupError(err error) bool {
	var setupErr *SetupError
	return errors.As(err, &setupErr)
}
