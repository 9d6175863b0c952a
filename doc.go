// Package yas describes the archive header shared by every yas archive.
//
// An archive may begin with a short header naming the library that wrote
// it, the archive version, the wire format and the word width of the
// producer. The header is packed into a single byte and framed by the
// magic "yas":
//
//	binary  79 61 73 <packed>           4 bytes
//	text    79 61 73 <hi> <lo> 20       6 bytes written, 5 read
//	json    (no header)
//
// # Architecture Overview
//
//	yas/
//	├── header/           Packed header byte and the per-format codecs
//	├── archive/          Input and output views over a header, typed by format
//	├── errors/           Structured error types with phase and kind
//	├── internal/binary/  Fixed-size stream reads and buffered writes
//	├── internal/config/  TOML and environment configuration
//	├── internal/logging/ zap logger construction
//	└── cmd/yasinfo/      Command-line inspector and header writer
//
// # Quick Start
//
// Read the header at the start of a binary archive:
//
//	in, err := archive.OpenInput[archive.Binary](r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	version, err := in.Version()
//
// Write one for this process:
//
//	out, err := archive.OpenOutput[archive.Text](w)
//
// When the format is only known at run time use archive.OpenInputFormat
// and archive.OpenOutputFormat.
//
// # Error Handling
//
// All failures are *errors.Error values and match the package sentinels:
//
//	if errors.Is(err, errors.ErrBadArchiveInformation) {
//	    // not a yas archive
//	}
package yas
