package header

import (
	"fmt"
	"io"
	"slices"

	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/internal/binary"
)

// Codec reads and writes the header of one wire format. Codecs are
// stateless; in NoHeader mode Decode returns the zero Header and Encode
// writes nothing.
type Codec interface {
	// Format returns the format this codec handles.
	Format() Format
	// Size returns the number of bytes Decode consumes.
	Size() int
	Decode(r io.Reader, mode Mode) (Header, error)
	Encode(w io.Writer, mode Mode, format Format, id Identity) error
}

var codecs = [...]Codec{
	FormatBinary: binaryCodec{},
	FormatText:   textCodec{},
	FormatJSON:   jsonCodec{},
}

// CodecFor returns the codec registered for f.
func CodecFor(f Format) (Codec, error) {
	if !f.Valid() {
		return nil, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("no codec for %s", f))
	}
	return codecs[f], nil
}

// Codecs returns every registered codec in format tag order.
func Codecs() []Codec {
	return slices.Clone(codecs[:])
}

// readPrefix reads a fixed-size header and checks its magic prefix.
func readPrefix(r io.Reader, format Format, size int) ([]byte, error) {
	br := binary.NewReader(r)
	raw, err := br.ReadFull(size)
	if err != nil {
		if errors.Is(err, binary.ErrShortRead) {
			return nil, errors.EmptyArchive(format.String(), len(raw), size)
		}
		return nil, errors.IO(errors.PhaseDecode, format.String(), br.WrapError("header", err))
	}
	if string(raw[:len(Magic)]) != Magic {
		return nil, errors.BadArchiveInformation(format.String(), raw[:len(Magic)])
	}
	return raw, nil
}

// flush writes a fully assembled header to w.
func flush(bw *binary.Writer, w io.Writer, format Format) error {
	if _, err := bw.WriteTo(w); err != nil {
		return errors.IO(errors.PhaseEncode, format.String(), err)
	}
	return nil
}
