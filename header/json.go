package header

import "io"

// jsonCodec has no wire representation. JSON archives describe themselves in
// their payload, so both directions are no-ops regardless of mode.
type jsonCodec struct{}

func (jsonCodec) Format() Format { return FormatJSON }

func (jsonCodec) Size() int { return 0 }

func (jsonCodec) Decode(io.Reader, Mode) (Header, error) { return 0, nil }

func (jsonCodec) Encode(io.Writer, Mode, Format, Identity) error { return nil }
