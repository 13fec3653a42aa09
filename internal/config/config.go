// Package config resolves which files bumpver touches, combining flags,
// an optional TOML file and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fsmiamoto/bumpver/internal/envfile"
)

const (
	// DefaultConfigFile is looked up in the working directory.
	DefaultConfigFile = ".bumpver.toml"
	// DefaultEnvFile is relative to the working directory.
	DefaultEnvFile = ".env"

	versionFileName = "version.txt"
)

// File is the on-disk TOML layout. All keys are optional.
type File struct {
	VersionFile   string `toml:"version_file"`
	EnvFile       string `toml:"env_file"`
	EnvVar        string `toml:"env_var"`
	AppendMissing bool   `toml:"append_missing"`
}

// Config is the resolved set of paths and options for one run.
type Config struct {
	VersionFile   string
	EnvFile       string
	EnvVar        string
	AppendMissing bool
	Source        string // config file that was loaded, empty if none
}

// ResolveInput carries the command-line side of the resolution.
type ResolveInput struct {
	FileFlag   string // --file, wins over everything
	ConfigPath string // --config; empty means DefaultConfigFile if present
	Executable string // path of the running binary; empty means os.Executable
}

// Load decodes the TOML file at path. Unknown keys are rejected.
func Load(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return File{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return f, nil
}

// Resolve applies flag > config file > default precedence.
func Resolve(in ResolveInput) (Config, error) {
	var (
		file   File
		source string
	)
	switch {
	case in.ConfigPath != "":
		f, err := Load(in.ConfigPath)
		if err != nil {
			return Config{}, err
		}
		file, source = f, in.ConfigPath
	default:
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			f, err := Load(DefaultConfigFile)
			if err != nil {
				return Config{}, err
			}
			file, source = f, DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config: %w", err)
		}
	}

	cfg := Config{
		EnvFile:       DefaultEnvFile,
		EnvVar:        envfile.DefaultVar,
		AppendMissing: file.AppendMissing,
		Source:        source,
	}
	if file.EnvFile != "" {
		cfg.EnvFile = file.EnvFile
	}
	if file.EnvVar != "" {
		if strings.ContainsAny(file.EnvVar, "=\n") {
			return Config{}, fmt.Errorf("load config %s: env_var %q must not contain '=' or newlines", source, file.EnvVar)
		}
		cfg.EnvVar = file.EnvVar
	}

	switch {
	case in.FileFlag != "":
		cfg.VersionFile = in.FileFlag
	case file.VersionFile != "":
		// Relative to the config file, so the same config works from any cwd.
		cfg.VersionFile = file.VersionFile
		if !filepath.IsAbs(cfg.VersionFile) {
			cfg.VersionFile = filepath.Join(filepath.Dir(source), cfg.VersionFile)
		}
	default:
		path, err := DefaultVersionFile(in.Executable)
		if err != nil {
			return Config{}, err
		}
		cfg.VersionFile = path
	}

	return cfg, nil
}

// DefaultVersionFile returns version.txt one directory above the directory
// holding the executable, with symlinks resolved.
func DefaultVersionFile(executable string) (string, error) {
	if executable == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		executable = exe
	}
	if resolved, err := filepath.EvalSymlinks(executable); err == nil {
		executable = resolved
	}
	return filepath.Clean(filepath.Join(filepath.Dir(executable), "..", versionFileName)), nil
}
