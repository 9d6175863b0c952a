package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // reading a header from a stream
	PhaseEncode Phase = "encode" // writing a header to a stream
	PhaseQuery  Phase = "query"  // accessor on an opened view
	PhaseConfig Phase = "config" // option and configuration handling
)

// Kind categorizes the error
type Kind string

const (
	KindEmptyArchive          Kind = "empty_archive"
	KindBadArchiveInformation Kind = "bad_archive_information"
	KindNoHeader              Kind = "no_header"
	KindInvalidHexDigit       Kind = "invalid_hex_digit"
	KindIO                    Kind = "io"
	KindInvalidInput          Kind = "invalid_input"
)

// Sentinels for errors.Is. They carry no phase and match an error of the
// same kind raised in any phase.
var (
	ErrEmptyArchive          = &Error{Kind: KindEmptyArchive}
	ErrBadArchiveInformation = &Error{Kind: KindBadArchiveInformation}
	ErrNoHeader              = &Error{Kind: KindNoHeader}
	ErrInvalidHexDigit       = &Error{Kind: KindInvalidHexDigit}
	ErrIO                    = &Error{Kind: KindIO}
	ErrInvalidInput          = &Error{Kind: KindInvalidInput}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Format string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Format != "" {
		b.WriteString(" (")
		b.WriteString(e.Format)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Kinds must be equal; the
// phase is compared only when the target names one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Phase == "" || e.Phase == t.Phase
}

// Is forwards to the standard library so callers need a single errors import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As forwards to the standard library.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Format sets the archive format name
func (b *Builder) Format(name string) *Builder {
	b.err.Format = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the header conditions

// EmptyArchive creates an error for a stream that ended before a full header
func EmptyArchive(format string, got, want int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindEmptyArchive,
		Format: format,
		Detail: fmt.Sprintf("archive is empty: read %d of %d header bytes", got, want),
		Value:  got,
	}
}

// BadArchiveInformation creates an error for a header whose magic prefix does not match
func BadArchiveInformation(format string, prefix []byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBadArchiveInformation,
		Format: format,
		Detail: fmt.Sprintf("archive is corrupted or was written without a header: prefix %q", prefix),
		Value:  append([]byte(nil), prefix...),
	}
}

// NoHeader creates an error for an information query on an archive opened without a header
func NoHeader(accessor string) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindNoHeader,
		Detail: fmt.Sprintf("%s is unavailable: archive has no header", accessor),
	}
}

// InvalidHexDigit creates an error for a text header byte outside 0-9A-F
func InvalidHexDigit(position int, c byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidHexDigit,
		Format: "text",
		Detail: fmt.Sprintf("byte %d (%q) is not a hex digit", position, c),
		Value:  c,
	}
}

// IO wraps a failure of the underlying stream
func IO(phase Phase, format string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Format: format,
		Detail: "stream error",
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
