package header

import "strconv"

// Magic is the identity prefix of binary and text headers.
const Magic = "yas"

// hexAlphabet maps nibbles to text header digits. Uppercase only.
const hexAlphabet = "0123456789ABCDEF"

// TextDelimiter follows the hex digits of a written text header.
const TextDelimiter = ' '

// ArchiveVersion is the archive version written by this library.
const ArchiveVersion uint8 = 3

// NativeWidth is the word width of the running process.
const NativeWidth = WordWidth(strconv.IntSize / 64)

// Identity is the producer information stamped into an output header.
type Identity struct {
	Version uint8
	Width   WordWidth
}

// Current returns the identity of this build.
func Current() Identity {
	return Identity{Version: ArchiveVersion, Width: NativeWidth}
}
