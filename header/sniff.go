package header

// Sniff identifies a binary or text header at the start of prefix without
// consuming a stream. A binary packed byte tagged binary has its top nibble
// at 0x0 or 0x8, so it is never an ASCII hex digit and the two layouts
// cannot be confused. JSON archives carry no header and are never reported.
func Sniff(prefix []byte) (Format, Header, bool) {
	if len(prefix) < binaryHeaderSize || string(prefix[:len(Magic)]) != Magic {
		return 0, 0, false
	}
	if len(prefix) >= textHeaderSize {
		if h, err := parseHexPair(prefix, len(Magic)); err == nil && h.Format() == FormatText && !h.IsZero() {
			return FormatText, h, true
		}
	}
	if h := FromByte(prefix[len(Magic)]); h.Format() == FormatBinary && !h.IsZero() {
		return FormatBinary, h, true
	}
	return 0, 0, false
}
