package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error.
type Kind int

const (
	// Unknown is the zero kind; it is never produced by this module.
	Unknown Kind = iota

	// Validation marks malformed input: bad name segments, invalid DTO structure.
	Validation

	// MissingField marks a wire payload lacking a required key.
	MissingField

	// UnexpectedField marks a key rejected by a closed schema.
	UnexpectedField

	// Range marks an integer that does not fit the 64-bit wire codec.
	Range

	// Format marks a wire value of the wrong shape, such as a pair with bad arity.
	Format

	// State marks a workflow step invoked in the wrong lifecycle state.
	State
)

var kindNames = map[Kind]string{
	Unknown:         "unknown",
	Validation:      "validation",
	MissingField:    "missing field",
	UnexpectedField: "unexpected field",
	Range:           "range",
	Format:          "format",
	State:           "state",
}

// String returns the human readable kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error implements error so a Kind can be used as an errors.Is target.
func (k Kind) Error() string { return k.String() + " error" }

// With returns a new Error of kind k with the given message.
func (k Kind) With(msg string) *Error {
	return &Error{Kind: k, Message: msg}
}

// WithFormat returns a new Error of kind k with a formatted message.
func (k Kind) WithFormat(format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns a new Error of kind k caused by err. Wrap(nil) returns nil.
func (k Kind) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Err: err}
}

// WithCauseAndFormat returns a new Error of kind k with a message and a cause.
func (k Kind) WithCauseAndFormat(cause error, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Error is the concrete error type of the toolkit.
type Error struct {
	Kind    Kind
	Path    []string // field path, outermost first
	Message string
	Err     error
}

// Error renders "<kind> error at a.b: message: cause".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is e's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// At returns a copy of e with name prepended to its field path.
func (e *Error) At(name string) *Error {
	c := *e
	c.Path = append([]string{name}, e.Path...)
	return &c
}

// AtField prefixes the field path of err when it is an *Error. Other errors
// are wrapped as Format errors located at name.
func AtField(err error, name string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e.At(name)
	}
	return (&Error{Kind: Format, Err: err}).At(name)
}

// KindOf returns the Kind of err, or Unknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is and As re-export the standard library helpers so callers need a single import.
var (
	Is = errors.Is
	As = errors.As
)
