package header

import (
	"io"
	"strings"

	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/internal/binary"
)

const textHeaderSize = len(Magic) + 2

type textCodec struct{}

func (textCodec) Format() Format { return FormatText }

func (textCodec) Size() int { return textHeaderSize }

// Decode consumes the magic and both hex digits. The delimiter written by
// Encode is not read.
func (textCodec) Decode(r io.Reader, mode Mode) (Header, error) {
	if mode == NoHeader {
		return 0, nil
	}
	raw, err := readPrefix(r, FormatText, textHeaderSize)
	if err != nil {
		return 0, err
	}
	return parseHexPair(raw, len(Magic))
}

func (textCodec) Encode(w io.Writer, mode Mode, format Format, id Identity) error {
	if mode == NoHeader {
		return nil
	}
	b := New(id.Version, format, id.Width).Byte()

	bw := binary.NewWriter()
	bw.WriteBytes([]byte(Magic))
	bw.Byte(hexAlphabet[b>>4])
	bw.Byte(hexAlphabet[b&0x0F])
	bw.Byte(TextDelimiter)
	return flush(bw, w, FormatText)
}

// parseHexPair decodes raw[at] and raw[at+1] as the high and low nibble.
func parseHexPair(raw []byte, at int) (Header, error) {
	hi, err := nibble(raw, at)
	if err != nil {
		return 0, err
	}
	lo, err := nibble(raw, at+1)
	if err != nil {
		return 0, err
	}
	return FromByte(hi<<4 | lo), nil
}

func nibble(raw []byte, at int) (byte, error) {
	i := strings.IndexByte(hexAlphabet, raw[at])
	if i < 0 {
		return 0, errors.InvalidHexDigit(at, raw[at])
	}
	return byte(i), nil
}
