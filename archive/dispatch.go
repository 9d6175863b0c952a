package archive

import (
	"fmt"
	"io"

	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/header"
)

// InputView is the method set shared by every Input[F].
type InputView interface {
	HeaderSize() int
	ArchiveType() header.Format
	Direction() Direction
	IsReadable() bool
	IsWritable() bool
	Bits() (int, error)
	Version() (int, error)
	Header() (header.Header, error)
}

// OutputView is the method set shared by every Output[F].
type OutputView interface {
	HeaderSize() int
	ArchiveType() header.Format
	Direction() Direction
	IsReadable() bool
	IsWritable() bool
	Bits() int
	Version() int
	Identity() header.Identity
}

var (
	_ InputView  = Input[Binary]{}
	_ InputView  = Input[Text]{}
	_ InputView  = Input[JSON]{}
	_ OutputView = Output[Binary]{}
	_ OutputView = Output[Text]{}
	_ OutputView = Output[JSON]{}
)

// OpenInputFormat opens an input view for a format chosen at run time.
func OpenInputFormat(r io.Reader, f header.Format, opts ...Option) (InputView, error) {
	switch f {
	case header.FormatBinary:
		return asInputView[Binary](OpenInput[Binary](r, opts...))
	case header.FormatText:
		return asInputView[Text](OpenInput[Text](r, opts...))
	case header.FormatJSON:
		return asInputView[JSON](OpenInput[JSON](r, opts...))
	}
	return nil, unknownFormat(f)
}

// OpenOutputFormat opens an output view for a format chosen at run time.
func OpenOutputFormat(w io.Writer, f header.Format, opts ...Option) (OutputView, error) {
	switch f {
	case header.FormatBinary:
		return asOutputView[Binary](OpenOutput[Binary](w, opts...))
	case header.FormatText:
		return asOutputView[Text](OpenOutput[Text](w, opts...))
	case header.FormatJSON:
		return asOutputView[JSON](OpenOutput[JSON](w, opts...))
	}
	return nil, unknownFormat(f)
}

func asInputView[F Format](in Input[F], err error) (InputView, error) {
	if err != nil {
		return nil, err
	}
	return in, nil
}

func asOutputView[F Format](out Output[F], err error) (OutputView, error) {
	if err != nil {
		return nil, err
	}
	return out, nil
}

func unknownFormat(f header.Format) error {
	return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown archive format %s", f))
}
