// Package apperr defines the application error taxonomy.
//
// Every failing operation returns an *Error whose Message is the exact
// human-readable text the presentation layer shows (the snackbar text), and
// whose Kind tells the caller how to treat it. Infrastructure causes can be
// wrapped for debugging without leaking into the user-facing message:
//
//	return apperr.New(apperr.Validation, "Passwords do not match")
//	return apperr.Wrap(apperr.ExternalService, "catalog unavailable", err)
package apperr

import (
	"errors"
	"fmt"
)

// Kind categorises an application error.
type Kind int

const (
	// Unknown is for unspecified errors.
	Unknown Kind = iota
	// Validation: malformed or missing user input. Recoverable; the
	// operation aborts with no state change.
	Validation
	// Conflict: a uniqueness violation (e.g. email already registered).
	Conflict
	// Auth: credential mismatch. Deliberately does not distinguish
	// "no such email" from "wrong password".
	Auth
	// NotFound: a referenced id has no matching record.
	NotFound
	// EmptyCart: checkout attempted with nothing to buy.
	EmptyCart
	// ExternalService: a failure reaching an external dependency.
	ExternalService
	// Storage: a persistence write failed.
	Storage
)

// Error is the application error type. Message is user-facing; Err holds
// the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error so errors.Is / errors.As can walk
// the chain.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an *Error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an *Error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Message returns the user-facing text for err: the Message of the first
// *Error in the chain, or err.Error() for foreign errors.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

func is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsValidation reports whether err is a Validation error.
func IsValidation(err error) bool { return is(err, Validation) }

// IsConflict reports whether err is a Conflict error.
func IsConflict(err error) bool { return is(err, Conflict) }

// IsAuth reports whether err is an Auth error.
func IsAuth(err error) bool { return is(err, Auth) }

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool { return is(err, NotFound) }

// IsEmptyCart reports whether err is an EmptyCart error.
func IsEmptyCart(err error) bool { return is(err, EmptyCart) }
