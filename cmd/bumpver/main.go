// Command bumpver bumps the version in version.txt and copies it into the
// REACT_APP_VERSION line of .env.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/fsmiamoto/bumpver/internal/bumper"
	"github.com/fsmiamoto/bumpver/internal/cli"
	"github.com/fsmiamoto/bumpver/internal/commitmsg"
	"github.com/fsmiamoto/bumpver/internal/config"
	"github.com/fsmiamoto/bumpver/internal/tui"
	"github.com/fsmiamoto/bumpver/internal/version"
	"github.com/fsmiamoto/bumpver/internal/versionfile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(args)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			fmt.Fprint(stdout, cli.Usage(isTerminal(stdout), terminalWidth(stdout)))
			return 0
		}
		fmt.Fprint(stderr, cli.Usage(false, 0))
		fmt.Fprintf(stderr, "bumpver: %v\n", err)
		return 1
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "bumpver %s\n", cli.VersionString())
		return 0
	}

	if err := bump(opts, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "bumpver: %v\n", err)
		return 1
	}
	return 0
}

func bump(opts *cli.Config, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Resolve(config.ResolveInput{
		FileFlag:   opts.File,
		ConfigPath: opts.ConfigFile,
	})
	if err != nil {
		return err
	}

	flags, err := resolveFlags(opts, cfg, stdin, stdout)
	if err != nil {
		return err
	}

	_, err = bumper.New(bumper.Config{
		VersionFile:   cfg.VersionFile,
		EnvFile:       cfg.EnvFile,
		EnvVar:        cfg.EnvVar,
		AppendMissing: cfg.AppendMissing,
		Flags:         flags,
		Verbose:       opts.Verbose,
		Stdout:        stdout,
	}).Run()
	return err
}

// resolveFlags merges the explicit flags with --from-commit and, when
// requested, lets the user adjust them in the picker.
func resolveFlags(opts *cli.Config, cfg config.Config, stdin io.Reader, stdout io.Writer) (version.Flags, error) {
	flags := opts.Flags
	if opts.FromCommit != "" {
		derived, err := commitmsg.Flags(opts.FromCommit)
		if err != nil {
			return version.Flags{}, err
		}
		flags = flags.Or(derived)
	}

	if !opts.Interactive {
		return flags, nil
	}
	if !isTerminal(stdin) || !isTerminal(stdout) {
		return version.Flags{}, fmt.Errorf("--interactive requires a terminal")
	}
	current, err := versionfile.Read(cfg.VersionFile)
	if err != nil {
		return version.Flags{}, err
	}
	return tui.Pick(current, flags, stdin, stdout)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
