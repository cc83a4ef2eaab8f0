// Package errors provides structured error types for the provisioner.
//
// ProvisionError carries an error code for programmatic handling, an
// optional site domain for context, and an optional wrapped cause.
// Sentinel errors cover the configuration failures the orchestrator
// checks for explicitly.
//
// Use errors.Is for sentinel comparison:
//
//	if errors.Is(err, errors.ErrNoRootPassword) {
//	    // config has neither root_password nor root_password_random
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeConfig     ErrorCode = "CONFIG"     // Configuration missing or invalid
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodeDatabase   ErrorCode = "DATABASE"   // Database initialization error
	ErrCodeProcess    ErrorCode = "PROCESS"    // External process failure
	ErrCodeTemplate   ErrorCode = "TEMPLATE"   // Vhost template rendering error
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// ProvisionError represents a structured error with context about the
// provisioning step that failed.
type ProvisionError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Site    string    // Site domain (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *ProvisionError) Error() string {
	if e.Site != "" && e.Err != nil {
		return fmt.Sprintf("site %s: %s: %v", e.Site, e.Message, e.Err)
	}
	if e.Site != "" {
		return fmt.Sprintf("site %s: %s", e.Site, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *ProvisionError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *ProvisionError) Is(target error) bool {
	t, ok := target.(*ProvisionError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for the configuration failures checked explicitly.
var (
	// ErrNoRootPassword indicates the database section resolves to no
	// root credential at all.
	ErrNoRootPassword = &ProvisionError{
		Code:    ErrCodeConfig,
		Message: "in database section, set root_password or root_password_random: true",
	}

	// ErrMissingSites indicates the config has no sites section.
	ErrMissingSites = &ProvisionError{Code: ErrCodeConfig, Message: "config is missing the sites section"}

	// ErrMissingDatabase indicates the config has no database section.
	ErrMissingDatabase = &ProvisionError{Code: ErrCodeConfig, Message: "config is missing the database section"}
)

// Config creates a configuration error with a custom message.
func Config(msg string) error {
	return &ProvisionError{
		Code:    ErrCodeConfig,
		Message: msg,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &ProvisionError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &ProvisionError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapSite creates an error with site context and underlying error.
func WrapSite(code ErrorCode, site, msg string, err error) error {
	return &ProvisionError{
		Code:    code,
		Message: msg,
		Site:    site,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
