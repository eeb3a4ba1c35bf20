package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure produced by a fallible call site. Agents and
// the engine branch on the kind rather than on error message text, keeping
// user-facing fallback selection decoupled from wording.
type ErrorKind string

const (
	// ErrorKindProvider marks content-provider failures (LLM or third-party
	// API unavailable or returning unusable data). Always recovered locally
	// via a static fallback.
	ErrorKindProvider ErrorKind = "provider"

	// ErrorKindUserProfile marks failures to load user context or profile data.
	ErrorKindUserProfile ErrorKind = "user_profile"

	// ErrorKindStorage marks memory / recommendation / wellness store failures.
	ErrorKindStorage ErrorKind = "storage"

	// ErrorKindStep marks a domain-logic failure inside a single execution step.
	ErrorKindStep ErrorKind = "step"

	// ErrorKindUnknownAgent marks a request for an agent name that is not
	// registered. This is a caller programming mistake and the one error class
	// the engine surfaces instead of swallowing.
	ErrorKindUnknownAgent ErrorKind = "unknown_agent"

	// ErrorKindInternal is the default kind for unclassified failures.
	ErrorKindInternal ErrorKind = "internal"
)

// Error is a tagged error carrying a closed ErrorKind alongside the cause.
type Error struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }

// Unwrap exposes the wrapped cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err with the given kind. A nil err yields nil.
func NewError(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Errorf creates a tagged error from a format string.
func Errorf(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the ErrorKind from an error chain, defaulting to
// ErrorKindInternal for untagged errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindInternal
}
