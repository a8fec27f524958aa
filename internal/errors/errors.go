// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by services and
// use cases and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested tag has no live entry in the store.
	ErrNotFound = errors.New("not found")

	// ErrStoreRejected indicates the underlying secure store refused the
	// operation (bad attributes, duplicate insert, permission).
	ErrStoreRejected = errors.New("store rejected")

	// ErrCryptoFailure indicates key generation, encryption, or decryption
	// failed (includes payload-too-large and key-mismatch cases).
	ErrCryptoFailure = errors.New("crypto failure")

	// ErrSerialization indicates a stored blob could not be parsed into the
	// expected record shape.
	ErrSerialization = errors.New("serialization failure")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
