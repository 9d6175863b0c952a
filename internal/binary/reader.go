package binary

import (
	"errors"
	"fmt"
	"io"
)

// ErrShortRead is returned when the stream ends before the requested number of bytes.
var ErrShortRead = errors.New("binary: short read")

// Reader wraps an io.Reader with position tracking and exact-length reads.
type Reader struct {
	r   io.Reader
	pos int
}

// NewReader creates a new Reader wrapping the given io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, pos: 0}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// ReadFull reads exactly n bytes. When the stream ends early the bytes that
// were read are returned together with ErrShortRead. Any other stream error
// is returned as is.
func (r *Reader) ReadFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(r.r, buf)
	r.pos += got
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return buf[:got], ErrShortRead
		}
		return buf[:got], err
	}
	return buf, nil
}

// ParseError represents an error during header parsing with position information.
type ParseError struct {
	Err      error
	Section  string
	Position int
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("yas: %s at position %d: %v", e.Section, e.Position, e.Err)
	}
	return fmt.Sprintf("yas: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(section string, err error) error {
	return &ParseError{
		Position: r.pos,
		Section:  section,
		Err:      err,
	}
}
