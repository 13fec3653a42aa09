// Package bumper runs the bump: read the version file, increment, persist
// and copy the new version into the env file.
package bumper

import (
	"fmt"
	"io"
	"os"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/fsmiamoto/bumpver/internal/envfile"
	"github.com/fsmiamoto/bumpver/internal/version"
	"github.com/fsmiamoto/bumpver/internal/versionfile"
)

// Config holds the parameters for a single run.
type Config struct {
	VersionFile   string
	EnvFile       string
	EnvVar        string
	AppendMissing bool
	Flags         version.Flags
	Verbose       bool
	Stdout        io.Writer // verbose report; defaults to os.Stdout
}

// Result is the summary returned after a successful run.
type Result struct {
	Previous version.Version
	Current  version.Version
	Env      envfile.Result
}

// Bumper performs one run-to-completion bump.
type Bumper struct {
	cfg Config
	out io.Writer
}

// New creates a Bumper with the given config.
func New(cfg Config) *Bumper {
	out := cfg.Stdout
	if out == nil {
		out = os.Stdout
	}
	if !cfg.Verbose {
		out = io.Discard
	}
	return &Bumper{cfg: cfg, out: out}
}

// Run reads, bumps and persists the version, then propagates it to the env
// file. A parse error leaves both files untouched; a missing env file is only
// noticed after the version file has been rewritten.
func (b *Bumper) Run() (Result, error) {
	b.field("version file", b.cfg.VersionFile)

	prev, err := versionfile.Read(b.cfg.VersionFile)
	if err != nil {
		return Result{}, err
	}
	b.field("current", oldVersionStyle.Render(prev.String()))

	next := version.Bump(prev, b.cfg.Flags)
	b.field("new", newVersionStyle.Render(next.String()))

	if err := versionfile.Persist(b.cfg.VersionFile, next); err != nil {
		return Result{}, err
	}

	env, err := envfile.Propagate(b.cfg.VersionFile, b.cfg.EnvFile, b.cfg.EnvVar, envfile.Options{
		AppendMissing: b.cfg.AppendMissing,
	})
	if err != nil {
		return Result{}, err
	}
	b.field("env file", b.cfg.EnvFile)
	switch {
	case env.Appended:
		b.logf("%s\n", warnStyle.Render(fmt.Sprintf("%s not found in %s, appended", b.cfg.EnvVar, b.cfg.EnvFile)))
	case !env.Found():
		b.logf("%s\n", warnStyle.Render(fmt.Sprintf("%s not found in %s, nothing written", b.cfg.EnvVar, b.cfg.EnvFile)))
	}

	return Result{Previous: prev, Current: next, Env: env}, nil
}

// labelWidth fits the longest label, "version file".
const labelWidth = 13

func (b *Bumper) field(label, value string) {
	b.logf("%s %s\n", labelStyle.Render(runewidth.FillRight(label+":", labelWidth)), value)
}

func (b *Bumper) logf(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}
