package archive

import "github.com/pmed/yas/header"

// Option configures how a view is opened.
type Option func(*options)

type options struct {
	mode     header.Mode
	identity header.Identity
}

func newOptions(opts []Option) options {
	o := options{
		mode:     header.WithHeader,
		identity: header.Current(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithoutHeader opens the archive without reading or writing a header.
func WithoutHeader() Option {
	return WithMode(header.NoHeader)
}

// WithMode sets the header mode explicitly.
func WithMode(m header.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithIdentity overrides the version and word width stamped by an output
// view. Input views ignore it.
func WithIdentity(id header.Identity) Option {
	return func(o *options) {
		o.identity = id
	}
}
