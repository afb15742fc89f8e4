// Package apperrors defines the application's error catalog: every failure
// that may reach an HTTP client is represented by an *Error value carrying a
// stable numeric code, an HTTP status, and a user-facing message.
//
// The catalog is defined once at package init and is never mutated at request
// time. Handlers and services signal failures by returning catalog entries
// (optionally refined with WithMessage or WithDetails); a single translation
// boundary in the HTTP layer converts them into the wire envelope.
//
// Codes are stable across message-text changes so that API clients can branch
// on the code rather than string-matching messages.
package apperrors

import "errors"

// Error is an application failure with a stable wire representation.
// Two Error values are considered equivalent by errors.Is when their Code
// fields match, so refined copies (WithMessage, WithDetails) still match the
// catalog entry they derive from.
type Error struct {
	// Status is the HTTP status code this failure maps to.
	Status int

	// Code is the stable numeric identifier of the failure, serialized as a
	// string on the wire (e.g. "60001").
	Code string

	// Message is the user-facing description. Deliberately generic for
	// credential and token failures to avoid enumeration/oracle attacks.
	Message string

	// Details optionally carries structured validation detail, emitted in
	// the envelope's "errors" field when present.
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors by stable code, so derived copies compare equal to their
// catalog entry under errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of e with the message replaced.
// The code and status are preserved, keeping errors.Is matching intact.
func (e *Error) WithMessage(message string) *Error {
	c := *e
	c.Message = message
	c.Details = nil
	return &c
}

// WithDetails returns a copy of e carrying structured detail (for example a
// list of field validation failures) to be emitted in the error envelope.
func (e *Error) WithDetails(details any) *Error {
	c := *e
	c.Details = details
	return &c
}

// New constructs a catalog entry. Entries are created at package init and
// treated as immutable afterwards.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// From classifies err as an application error. Known *Error values (anywhere
// in the wrap chain) are returned as-is; anything else maps to Internal so
// that unrecognized failures never leak internals to the client.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal
}
