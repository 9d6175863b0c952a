package archive

import "github.com/pmed/yas/header"

// Format is the type-level marker for an archive format. It is sealed to
// Binary, Text and JSON.
type Format interface {
	Tag() header.Format
	format()
}

// Binary selects the binary header ("yas" + packed byte).
type Binary struct{}

// Text selects the text header ("yas" + two hex digits).
type Text struct{}

// JSON selects the header-less json format.
type JSON struct{}

func (Binary) Tag() header.Format { return header.FormatBinary }
func (Text) Tag() header.Format   { return header.FormatText }
func (JSON) Tag() header.Format   { return header.FormatJSON }

func (Binary) format() {}
func (Text) format()   {}
func (JSON) format()   {}

func tagOf[F Format]() header.Format {
	var f F
	return f.Tag()
}

func codecOf[F Format]() header.Codec {
	c, err := header.CodecFor(tagOf[F]())
	if err != nil {
		// unreachable: every marker maps to a registered codec
		panic(err)
	}
	return c
}

// Direction tells whether a view reads or writes its header.
type Direction uint8

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	if d == Out {
		return "out"
	}
	return "in"
}
