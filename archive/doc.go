// Package archive exposes direction- and format-specific views of an archive
// header.
//
// # Main Types
//
//   - Input[F]: header read from a stream; Bits and Version fail with
//     errors.ErrNoHeader when the archive was opened without a header
//   - Output[F]: header written to a stream; Bits and Version report the
//     producer identity and never fail
//   - Binary, Text, JSON: format markers used as the type argument F
//
// The format is a type parameter and the direction is the constructor, so an
// input view cannot be handed to code that expects an output view. When the
// format is only known at run time, OpenInputFormat and OpenOutputFormat
// pick the view once and return it behind InputView or OutputView; the two
// interfaces have incompatible method sets.
//
// # Thread Safety
//
// Views are immutable once opened and safe for concurrent reads. The stream
// belongs to the caller.
//
// # Example
//
//	out, err := archive.OpenOutput[archive.Binary](w)
//	if err != nil {
//	    return err
//	}
//	// ... serialize payload ...
//
//	in, err := archive.OpenInput[archive.Binary](r)
//	if err != nil {
//	    return err
//	}
//	v, err := in.Version()
package archive
