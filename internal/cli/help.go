package cli

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const usage = `# bumpver

Bump the version stored in version.txt and copy it into the
REACT_APP_VERSION line of .env. If a larger component is bumped the smaller
ones are reset to 0 unless they are also passed.

## Usage

    bumpver [--major] [--minor] [--micro] [--file <path>] [-v]

## Flags

- ` + "`--major`" + `               bump major version X.0.0
- ` + "`--minor`" + `               bump minor version 0.Y.0
- ` + "`--micro`" + `               bump micro version 0.0.Z
- ` + "`--file <path>`" + `         version file (default: version.txt one level above the binary)
- ` + "`-v, --verbose`" + `         print the file used, the current and the new version
- ` + "`--config <path>`" + `       TOML config (default: .bumpver.toml if present)
- ` + "`--from-commit <msg>`" + `   derive the bump from a Conventional Commits message
- ` + "`-i, --interactive`" + `     pick the components to bump in a terminal UI
- ` + "`--version`" + `             print the bumpver version
- ` + "`-h, --help`" + `            show this help
`

// Usage returns the help text. When styled is set it is rendered as
// markdown for a terminal of the given width; rendering errors fall back to
// the plain text.
func Usage(styled bool, width int) string {
	if !styled {
		return usage
	}
	if width < 20 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return usage
	}
	out, err := r.Render(usage)
	if err != nil {
		return usage
	}
	return strings.TrimRight(out, "\n") + "\n"
}
