package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
	"go.uber.org/zap"

	"github.com/pmed/yas/archive"
	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/header"
)

// StampCmd writes a header the way an output archive would.
type StampCmd struct {
	Format         string `name:"format" short:"f" help:"Header format (default from config)"`
	NoHeader       bool   `name:"no-header" help:"Write nothing, as an archive opened without a header would"`
	ArchiveVersion uint8  `name:"archive-version" help:"Version to stamp (default: this build)"`
	Bits           int    `name:"bits" help:"Word width to stamp, 32 or 64 (default: this process)"`
	Out            string `name:"out" short:"o" type:"path" help:"Write to a file instead of stdout"`
	XZ             bool   `name:"xz" help:"Compress the output with xz"`
}

func (c *StampCmd) Run(e *env) error {
	opts, err := c.options(e)
	if err != nil {
		return err
	}

	out, err := c.write(opts)
	if err != nil {
		return err
	}

	e.log.Debug("stamped archive header",
		zap.String("out", c.Out),
		zap.Stringer("format", out.ArchiveType()),
		zap.Int("version", out.Version()),
		zap.Int("bits", out.Bits()),
		zap.Bool("xz", c.XZ))
	if c.Out != "" {
		fmt.Fprintf(e.out, "%s %s v%d %d-bit -> %s\n",
			e.styles.title.Render("stamped"), out.ArchiveType(), out.Version(), out.Bits(), c.Out)
	}
	return nil
}

// write stamps to stdout or to c.Out. A file is closed before the header
// counts as written.
func (c *StampCmd) write(opts stampOptions) (archive.OutputView, error) {
	if c.Out == "" {
		return stamp(os.Stdout, opts, c.XZ)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return nil, err
	}
	return stampAndClose(f, opts, c.XZ)
}

// stampAndClose reports a failed Close as a failed write.
func stampAndClose(wc io.WriteCloser, opts stampOptions, compress bool) (archive.OutputView, error) {
	out, err := stamp(wc, opts, compress)
	if cerr := wc.Close(); err == nil && cerr != nil {
		err = errors.IO(errors.PhaseEncode, opts.format.String(), cerr)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

type stampOptions struct {
	format header.Format
	mode   header.Mode
	id     header.Identity
}

func (c *StampCmd) options(e *env) (stampOptions, error) {
	o := stampOptions{
		format: e.cfg.Format,
		mode:   e.cfg.Mode,
		id:     header.Current(),
	}
	if c.Format != "" {
		f, err := header.ParseFormat(c.Format)
		if err != nil {
			return stampOptions{}, err
		}
		o.format = f
	}
	if c.NoHeader {
		o.mode = header.NoHeader
	}
	if c.ArchiveVersion != 0 {
		o.id.Version = c.ArchiveVersion
	}
	switch c.Bits {
	case 0:
	case 32:
		o.id.Width = header.Width32
	case 64:
		o.id.Width = header.Width64
	default:
		return stampOptions{}, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("bits must be 32 or 64, got %d", c.Bits))
	}
	return o, nil
}

// stamp writes a header to w, through an xz encoder when compress is set.
func stamp(w io.Writer, o stampOptions, compress bool) (archive.OutputView, error) {
	if !compress {
		return archive.OpenOutputFormat(w, o.format, archive.WithMode(o.mode), archive.WithIdentity(o.id))
	}

	xw, err := xz.NewWriter(w)
	if err != nil {
		return nil, errors.IO(errors.PhaseEncode, "xz", err)
	}
	out, err := archive.OpenOutputFormat(xw, o.format, archive.WithMode(o.mode), archive.WithIdentity(o.id))
	if err != nil {
		xw.Close()
		return nil, err
	}
	if err := xw.Close(); err != nil {
		return nil, errors.IO(errors.PhaseEncode, "xz", err)
	}
	return out, nil
}
