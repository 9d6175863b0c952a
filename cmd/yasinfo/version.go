package main

import (
	"fmt"

	"github.com/pmed/yas/header"
)

// VersionCmd prints the identity this build stamps into headers.
type VersionCmd struct{}

func (c *VersionCmd) Run(e *env) error {
	id := header.Current()
	fmt.Fprintf(e.out, "archive version %d, %d-bit\n", id.Version, id.Width.Bits())
	for _, codec := range header.Codecs() {
		fmt.Fprintf(e.out, "  %-6s header %d bytes\n", codec.Format(), codec.Size())
	}
	return nil
}
