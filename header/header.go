package header

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/pmed/yas/errors"
)

// Bit layout of the packed header byte.
const (
	versionBits = 4
	formatBits  = 3

	versionMask = 1<<versionBits - 1
	formatShift = versionBits
	formatMask  = 1<<formatBits - 1
	widthShift  = versionBits + formatBits
)

// MaxVersion is the largest version the packed byte can carry.
const MaxVersion = versionMask

// Header is the packed version/format/word-width record. The zero value is
// the "absent" sentinel, never a binary version 0 header.
type Header uint8

// The packed representation must stay exactly one byte wide.
var _ = [1]struct{}{}[unsafe.Sizeof(Header(0))-1]

// New packs version, format and width. Each field is truncated to its bit width.
func New(version uint8, format Format, width WordWidth) Header {
	return Header(version&versionMask |
		(uint8(format)&formatMask)<<formatShift |
		(uint8(width)&1)<<widthShift)
}

// FromByte reinterprets a raw packed byte.
func FromByte(b byte) Header {
	return Header(b)
}

// Byte returns the packed representation.
func (h Header) Byte() byte {
	return byte(h)
}

func (h Header) Version() uint8 {
	return uint8(h) & versionMask
}

func (h Header) Format() Format {
	return Format(uint8(h) >> formatShift & formatMask)
}

func (h Header) Width() WordWidth {
	return WordWidth(uint8(h) >> widthShift & 1)
}

// IsZero reports whether h carries the absent sentinel (version 0).
func (h Header) IsZero() bool {
	return h.Version() == 0
}

func (h Header) String() string {
	if h.IsZero() {
		return "no header"
	}
	return fmt.Sprintf("v%d %s %d-bit", h.Version(), h.Format(), h.Width().Bits())
}

// Format selects the wire representation of an archive.
type Format uint8

const (
	FormatBinary Format = iota
	FormatText
	FormatJSON
)

var formatNames = [...]string{
	FormatBinary: "binary",
	FormatText:   "text",
	FormatJSON:   "json",
}

func (f Format) String() string {
	if f.Valid() {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// Valid reports whether f names a known format.
func (f Format) Valid() bool {
	return int(f) < len(formatNames)
}

// ParseFormat maps a format name to its tag. Matching ignores case and
// surrounding space.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown archive format %q", s))
}

// WordWidth records whether the producer used 32- or 64-bit native sizes.
type WordWidth uint8

const (
	Width32 WordWidth = 0
	Width64 WordWidth = 1
)

// Bits returns 32 or 64.
func (w WordWidth) Bits() int {
	if w == Width64 {
		return 64
	}
	return 32
}

// Valid reports whether w is Width32 or Width64.
func (w WordWidth) Valid() bool {
	return w <= Width64
}

func (w WordWidth) String() string {
	return fmt.Sprintf("%d-bit", w.Bits())
}

// Mode controls whether a codec touches the stream at all.
type Mode uint8

const (
	WithHeader Mode = iota
	NoHeader
)

func (m Mode) String() string {
	if m == NoHeader {
		return "no_header"
	}
	return "header"
}
