// Command yasinfo inspects and produces yas archive headers.
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `name:"config" short:"c" type:"path" env:"YAS_CONFIG" help:"TOML configuration file"`
	LogLevel string `name:"log-level" help:"Override the configured log level"`
	NoColor  bool   `name:"no-color" help:"Disable styled output"`
}

// CLI defines the command-line interface for yasinfo.
var CLI struct {
	Globals

	Inspect InspectCmd `cmd:"" help:"Decode the header at the start of an archive"`
	Stamp   StampCmd   `cmd:"" help:"Write a fresh archive header"`
	Explore ExploreCmd `cmd:"" help:"Decode header bytes interactively"`
	Version VersionCmd `cmd:"" help:"Print the header identity of this build"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("yasinfo"),
		kong.Description("Inspect and produce yas archive headers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	e, err := newEnv(&CLI.Globals, os.Stdout, os.Getenv)
	if err != nil {
		ctx.Errorf("%s", err)
		os.Exit(exitCode(err))
	}

	err = ctx.Run(e)
	e.close()
	if err != nil {
		ctx.Errorf("%s", err)
		os.Exit(exitCode(err))
	}
}
