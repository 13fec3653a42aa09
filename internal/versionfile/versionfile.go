// Package versionfile reads and overwrites the single-line version file.
package versionfile

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/fsmiamoto/bumpver/internal/version"
)

// defaultPerm is used when the file's current mode cannot be read.
const defaultPerm fs.FileMode = 0o644

// ReadRaw returns the file content verbatim.
func ReadRaw(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read version file: %w", err)
	}
	return string(b), nil
}

// Read parses the version stored at path.
func Read(path string) (version.Version, error) {
	raw, err := ReadRaw(path)
	if err != nil {
		return version.Version{}, err
	}
	v, err := version.Parse(raw)
	if err != nil {
		return version.Version{}, fmt.Errorf("parse version file %s: %w", path, err)
	}
	return v, nil
}

// Persist overwrites the whole file with v, without a trailing newline.
// The file's permissions are kept.
func Persist(path string, v version.Version) error {
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(v.String()), perm); err != nil {
		return fmt.Errorf("write version file: %w", err)
	}
	return nil
}
