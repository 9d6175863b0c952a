// Package header implements the self-describing prefix written at the start
// of every yas archive.
//
// # Header value
//
// A Header is one packed byte:
//
//	bit  7   6 5 4   3 2 1 0
//	     W   F F F   V V V V
//
//	V  archive version, 0-15 (0 means "no header")
//	F  format tag: 0 binary, 1 text, 2 json
//	W  word width of the producer: 0 = 32-bit, 1 = 64-bit
//
// # Wire formats
//
//	binary  "yas" + packed byte                  4 bytes
//	text    "yas" + two uppercase hex digits     5 bytes read, 6 written (trailing ' ')
//	json    nothing                              0 bytes
//
// The text codec writes a space after the two hex digits but only consumes
// five bytes on read; the delimiter is left in the stream for the next
// reader. Existing text archives depend on that layout.
//
// # Codecs
//
// Each format has a stateless Codec, looked up by tag:
//
//	c, err := header.CodecFor(header.FormatText)
//	if err != nil {
//	    return err
//	}
//	if err := c.Encode(w, header.WithHeader, header.FormatText, header.Current()); err != nil {
//	    return err
//	}
//
// Most callers go through the archive package instead, which pairs a codec
// with a direction-specific view.
package header
