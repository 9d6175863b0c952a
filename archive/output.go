package archive

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/header"
)

// Output is the write-side view of an archive in format F. It reports the
// identity it stamped, which is always known locally.
type Output[F Format] struct {
	id header.Identity
}

// OpenOutput writes the header of format F to w. The identity defaults to
// header.Current(). It must be representable in a header; when nothing is
// written (WithoutHeader, or JSON) the identity is reported as given.
func OpenOutput[F Format](w io.Writer, opts ...Option) (Output[F], error) {
	o := newOptions(opts)
	codec := codecOf[F]()

	if o.mode == header.WithHeader && codec.Size() > 0 {
		if err := checkIdentity(o.identity); err != nil {
			return Output[F]{}, err
		}
	}

	if err := codec.Encode(w, o.mode, codec.Format(), o.identity); err != nil {
		Logger().Debug("write archive header failed",
			zap.Stringer("format", codec.Format()),
			zap.Error(err))
		return Output[F]{}, err
	}

	Logger().Debug("wrote archive header",
		zap.Stringer("format", codec.Format()),
		zap.Stringer("mode", o.mode),
		zap.Uint8("version", o.identity.Version),
		zap.Int("bits", o.identity.Width.Bits()))
	return Output[F]{id: o.identity}, nil
}

// HeaderSize returns the fixed header size of F, as seen by a reader.
func (Output[F]) HeaderSize() int { return codecOf[F]().Size() }

func (Output[F]) ArchiveType() header.Format { return tagOf[F]() }

func (Output[F]) Direction() Direction { return Out }

func (Output[F]) IsReadable() bool { return false }

func (Output[F]) IsWritable() bool { return true }

// Bits returns the word width stamped into the header.
func (o Output[F]) Bits() int { return o.id.Width.Bits() }

// Version returns the archive version stamped into the header.
func (o Output[F]) Version() int { return int(o.id.Version) }

func (o Output[F]) Identity() header.Identity { return o.id }

// checkIdentity rejects identities the packed byte would truncate.
func checkIdentity(id header.Identity) error {
	if id.Version == 0 || id.Version > header.MaxVersion {
		return errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("archive version %d outside 1-%d", id.Version, header.MaxVersion))
	}
	if !id.Width.Valid() {
		return errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("word width %d is neither 32- nor 64-bit", uint8(id.Width)))
	}
	return nil
}
