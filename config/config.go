// Package config parses the command-line flags gbcore's entry point needs:
// the ROM path, and the debug/headless mode switches.
package config

import (
	"flag"
	"fmt"
)

// Config is the run configuration for a single emulation session.
type Config struct {
	ROMPath  string
	Debug    bool
	Headless bool
}

// Parse builds a Config from args (typically os.Args[1:]). It fails if no
// ROM path positional argument is given.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("gbcore", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "launch the bubbletea single-step inspector instead of the display window")
	headless := fs.Bool("headless", false, "run without any display collaborator")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() < 1 {
		return Config{}, fmt.Errorf("usage: gbcore [-debug] [-headless] <rom-path>")
	}

	return Config{
		ROMPath:  fs.Arg(0),
		Debug:    *debug,
		Headless: *headless,
	}, nil
}
