// Package envfile rewrites the KEY=VALUE file read by the front-end build.
package envfile

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fsmiamoto/bumpver/internal/versionfile"
)

// DefaultVar is the key the front-end build reads the version from.
const DefaultVar = "REACT_APP_VERSION"

// Options tunes Propagate.
type Options struct {
	// AppendMissing adds name=value at the end when no line contains name.
	AppendMissing bool
}

// Result summarizes a rewrite.
type Result struct {
	Replaced int  // lines replaced with name=value
	Dropped  int  // lines of length <= 1 removed
	Appended bool // name=value was added because no line matched
}

// Found reports whether any line contained the variable name.
func (r Result) Found() bool {
	return r.Replaced > 0
}

// Rewrite returns content with every line containing name replaced by
// name=value. Lines are measured with their terminator: "x\n" is kept while
// "\n", "" and a final unterminated one-character line are dropped. Every
// emitted line ends with "\n".
func Rewrite(content, name, value string, opts Options) (string, Result) {
	var (
		b   strings.Builder
		res Result
	)
	entry := name + "=" + value

	for _, line := range strings.SplitAfter(content, "\n") {
		switch {
		case strings.Contains(line, name):
			b.WriteString(entry)
			b.WriteByte('\n')
			res.Replaced++
		case len(line) > 1:
			b.WriteString(strings.TrimSuffix(line, "\n"))
			b.WriteByte('\n')
		case line != "":
			res.Dropped++
		}
	}

	if res.Replaced == 0 && opts.AppendMissing {
		b.WriteString(entry)
		b.WriteByte('\n')
		res.Appended = true
	}
	return b.String(), res
}

// Propagate reads the version string from versionPath and rewrites envPath
// in place so that the name line carries it.
func Propagate(versionPath, envPath, name string, opts Options) (Result, error) {
	value, err := versionfile.ReadRaw(versionPath)
	if err != nil {
		return Result{}, err
	}

	info, err := os.Stat(envPath)
	if err != nil {
		return Result{}, fmt.Errorf("stat env file: %w", err)
	}
	content, err := os.ReadFile(envPath)
	if err != nil {
		return Result{}, fmt.Errorf("read env file: %w", err)
	}

	out, res := Rewrite(string(content), name, value, opts)
	if err := writeInPlace(envPath, out, info.Mode().Perm()); err != nil {
		return Result{}, err
	}
	return res, nil
}

func writeInPlace(path, content string, perm fs.FileMode) error {
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("write env file: %w", err)
	}
	return nil
}
