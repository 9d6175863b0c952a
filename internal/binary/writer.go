package binary

import (
	"bytes"
	"io"
)

// Writer collects header bytes so they reach the stream in a single write.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteTo flushes the collected bytes to dst. A destination that accepts
// fewer bytes than offered without reporting an error yields io.ErrShortWrite.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	want := w.buf.Len()
	n, err := dst.Write(w.buf.Bytes())
	w.buf.Reset()
	if err != nil {
		return int64(n), err
	}
	if n != want {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}
