// Package cli handles flag parsing and help output for bumpver.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/fsmiamoto/bumpver/internal/version"
)

// ErrHelp is returned by Parse when -h/--help was given. Callers print
// usage and exit 0.
var ErrHelp = errors.New("help requested")

// Config holds the parsed CLI configuration.
type Config struct {
	Flags version.Flags // --major, --minor, --micro

	File        string // --file; empty means the configured default
	ConfigFile  string // --config; empty means .bumpver.toml if present
	Verbose     bool
	FromCommit  string // Conventional Commits message to derive flags from
	Interactive bool
	ShowVersion bool
}

// Parse parses command-line arguments and returns a Config.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("bumpver", pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage is printed by the caller
	fs.SortFlags = false

	var (
		cfg  Config
		help bool
	)
	fs.BoolVar(&cfg.Flags.Major, "major", false, "")
	fs.BoolVar(&cfg.Flags.Minor, "minor", false, "")
	fs.BoolVar(&cfg.Flags.Micro, "micro", false, "")
	fs.StringVar(&cfg.File, "file", "", "")
	fs.StringVar(&cfg.ConfigFile, "config", "", "")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "")
	fs.StringVar(&cfg.FromCommit, "from-commit", "", "")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "")
	fs.BoolVarP(&help, "help", "h", false, "")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	if help {
		return nil, ErrHelp
	}

	if fs.Changed("file") && cfg.File == "" {
		return nil, fmt.Errorf("--file must not be empty")
	}
	if fs.Changed("from-commit") && cfg.FromCommit == "" {
		return nil, fmt.Errorf("--from-commit must not be empty")
	}
	if positional := fs.Args(); len(positional) > 0 {
		return nil, fmt.Errorf("unexpected argument %q", positional[0])
	}

	return &cfg, nil
}
