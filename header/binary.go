package header

import (
	"io"

	"github.com/pmed/yas/internal/binary"
)

const binaryHeaderSize = len(Magic) + 1

type binaryCodec struct{}

func (binaryCodec) Format() Format { return FormatBinary }

func (binaryCodec) Size() int { return binaryHeaderSize }

// Decode accepts any packed byte once the magic prefix matches.
func (binaryCodec) Decode(r io.Reader, mode Mode) (Header, error) {
	if mode == NoHeader {
		return 0, nil
	}
	raw, err := readPrefix(r, FormatBinary, binaryHeaderSize)
	if err != nil {
		return 0, err
	}
	return FromByte(raw[len(Magic)]), nil
}

func (binaryCodec) Encode(w io.Writer, mode Mode, format Format, id Identity) error {
	if mode == NoHeader {
		return nil
	}
	h := New(id.Version, format, id.Width)

	bw := binary.NewWriter()
	bw.WriteBytes([]byte(Magic))
	bw.Byte(h.Byte())
	return flush(bw, w, FormatBinary)
}
