package archive

import (
	"io"

	"go.uber.org/zap"

	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/header"
)

// Input is the read-side view of an archive in format F. Its header is
// parsed once by OpenInput and never changes.
type Input[F Format] struct {
	header header.Header
}

// OpenInput reads the header of format F from r. With WithoutHeader the
// stream is left untouched and Bits/Version report errors.ErrNoHeader.
func OpenInput[F Format](r io.Reader, opts ...Option) (Input[F], error) {
	o := newOptions(opts)
	codec := codecOf[F]()

	h, err := codec.Decode(r, o.mode)
	if err != nil {
		Logger().Debug("read archive header failed",
			zap.Stringer("format", codec.Format()),
			zap.Error(err))
		return Input[F]{}, err
	}

	Logger().Debug("read archive header",
		zap.Stringer("format", codec.Format()),
		zap.Stringer("mode", o.mode),
		zap.Stringer("header", h))
	return Input[F]{header: h}, nil
}

// HeaderSize returns the number of bytes the header occupies on read.
func (Input[F]) HeaderSize() int { return codecOf[F]().Size() }

func (Input[F]) ArchiveType() header.Format { return tagOf[F]() }

func (Input[F]) Direction() Direction { return In }

func (Input[F]) IsReadable() bool { return true }

func (Input[F]) IsWritable() bool { return false }

// Bits returns the producer's word width, 32 or 64.
func (in Input[F]) Bits() (int, error) {
	if in.header.IsZero() {
		return 0, errors.NoHeader("bits")
	}
	return in.header.Width().Bits(), nil
}

// Version returns the archive version recorded by the producer.
func (in Input[F]) Version() (int, error) {
	if in.header.IsZero() {
		return 0, errors.NoHeader("version")
	}
	return int(in.header.Version()), nil
}

// Header returns the raw parsed header.
func (in Input[F]) Header() (header.Header, error) {
	if in.header.IsZero() {
		return 0, errors.NoHeader("header")
	}
	return in.header, nil
}
