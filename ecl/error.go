package ecl

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
// Every failure of the translation pipeline wraps exactly one of these,
// so callers can classify failures with errors.Is.
var (
	ErrMalformedInput         = NewError("malformed input")
	ErrInvalidConstantsValue  = NewError("constants must be a table")
	ErrInvalidIdentifier      = NewError("invalid constant name")
	ErrDuplicateConstant      = NewError("duplicate constant")
	ErrUndefinedConstant      = NewError("undefined constant")
	ErrUnresolvedConstant     = NewError("registered constant failed to resolve")
	ErrUnsupportedType        = NewError("unsupported type")
	ErrUnsupportedIdentifier  = NewError("unsupported identifier name")
	ErrUnsupportedSectionName = NewError("unsupported section name")
)

// Error represents a translation error with optional structured logging
// attributes. It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e matches target by comparing base messages.
// Sentinel errors carry no wrapped cause, so two errors match when their
// messages are identical or when the target is found in the wrapped chain.
func (e *Error) Is(target error) bool {
	te := &Error{}
	if !errors.As(target, &te) {
		return false
	}

	return e.msg == te.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// Wrapf creates a new Error whose message is extended with detail text.
// The sentinel remains matchable via errors.Is on the returned error.
func (e *Error) Wrapf(detail string) *Error {
	return &Error{
		msg:   e.msg,
		err:   errors.New(detail),
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}
