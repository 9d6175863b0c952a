package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ulikunitz/xz"
	"go.uber.org/zap"

	"github.com/pmed/yas/archive"
	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/header"
)

// xzMagic starts every xz stream (fd 37 7a 58 5a 00).
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// sniffLen covers the longest header Sniff can recognise.
const sniffLen = len(header.Magic) + 2

// InspectCmd decodes the header of an archive file.
type InspectCmd struct {
	Path     string `arg:"" type:"existingfile" help:"Archive file (optionally xz-compressed)"`
	Format   string `name:"format" short:"f" default:"auto" enum:"auto,binary,text,json" help:"Header format; auto recognises binary and text headers"`
	NoHeader bool   `name:"no-header" help:"Treat the archive as written without a header"`
}

func (c *InspectCmd) Run(e *env) error {
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	mode := e.cfg.Mode
	if c.NoHeader {
		mode = header.NoHeader
	}

	rep, err := inspect(f, c.Format, mode)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", c.Path, err)
	}
	rep.Path = c.Path

	e.log.Debug("inspected archive",
		zap.String("path", c.Path),
		zap.Stringer("format", rep.Format),
		zap.Bool("xz", rep.Compressed),
		zap.Stringer("header", rep.Header))
	renderReport(e.out, e.styles, rep)
	return nil
}

type report struct {
	Path       string
	Compressed bool
	Format     header.Format
	Size       int
	Header     header.Header
}

// inspect reads the header at the start of r. format is a format name or
// "auto".
func inspect(r io.Reader, format string, mode header.Mode) (report, error) {
	payload, compressed, err := openPayload(r)
	if err != nil {
		return report{}, err
	}

	f, err := resolveFormat(payload, format, mode)
	if err != nil {
		return report{}, err
	}

	view, err := archive.OpenInputFormat(payload, f, archive.WithMode(mode))
	if err != nil {
		return report{}, err
	}

	rep := report{
		Compressed: compressed,
		Format:     view.ArchiveType(),
		Size:       view.HeaderSize(),
	}
	h, err := view.Header()
	switch {
	case err == nil:
		rep.Header = h
	case !errors.Is(err, errors.ErrNoHeader):
		return report{}, err
	}
	return rep, nil
}

// openPayload transparently unwraps xz-compressed archives.
func openPayload(r io.Reader) (*bufio.Reader, bool, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(xzMagic))
	if !bytes.Equal(magic, xzMagic) {
		return br, false, nil
	}
	xr, err := xz.NewReader(br)
	if err != nil {
		return nil, false, errors.IO(errors.PhaseDecode, "xz", err)
	}
	return bufio.NewReader(xr), true, nil
}

func resolveFormat(br *bufio.Reader, name string, mode header.Mode) (header.Format, error) {
	if name != "" && name != "auto" {
		return header.ParseFormat(name)
	}
	if mode == header.NoHeader {
		return 0, errors.InvalidInput(errors.PhaseConfig, "a format is required to inspect an archive without a header")
	}

	prefix, _ := br.Peek(sniffLen)
	if len(prefix) < len(header.Magic)+1 {
		return 0, errors.EmptyArchive("auto", len(prefix), len(header.Magic)+1)
	}
	f, _, ok := header.Sniff(prefix)
	if !ok {
		return 0, errors.New(errors.PhaseDecode, errors.KindBadArchiveInformation).
			Format("auto").
			Detail("no binary or text header found").
			Build()
	}
	return f, nil
}

func renderReport(w io.Writer, s styles, rep report) {
	name := rep.Path
	if rep.Compressed {
		name += " (xz)"
	}
	fmt.Fprintf(w, "%s %s\n", s.title.Render("yas header"), name)

	row := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", s.label.Render(fmt.Sprintf("%-8s", label)), s.value.Render(value))
	}
	row("format", rep.Format.String())
	row("size", fmt.Sprintf("%d bytes", rep.Size))
	if rep.Header.IsZero() {
		row("header", "none")
		return
	}
	row("version", strconv.Itoa(int(rep.Header.Version())))
	row("bits", strconv.Itoa(rep.Header.Width().Bits()))
	row("packed", fmt.Sprintf("0x%02X %s", rep.Header.Byte(), s.bits.Render(bitString(rep.Header))))
}

// bitString groups the packed byte as width, format and version bits.
func bitString(h header.Header) string {
	b := fmt.Sprintf("%08b", h.Byte())
	return b[:1] + " " + b[1:4] + " " + b[4:]
}
