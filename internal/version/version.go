// Package version models the major.minor.micro triple stored in a version file.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// separator splits the three components in the version file.
const separator = "."

// Version is a three-part semantic version. Components are never negative.
type Version struct {
	Major uint64
	Minor uint64
	Micro uint64
}

// Flags selects which components a bump increments. Any subset may be set.
type Flags struct {
	Major bool
	Minor bool
	Micro bool
}

// Any reports whether at least one component is selected.
func (f Flags) Any() bool {
	return f.Major || f.Minor || f.Micro
}

// Or merges two flag sets.
func (f Flags) Or(other Flags) Flags {
	return Flags{
		Major: f.Major || other.Major,
		Minor: f.Minor || other.Minor,
		Micro: f.Micro || other.Micro,
	}
}

// String renders the version as major.minor.micro.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// ParseError reports version file content that is not three
// dot-separated non-negative integers.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %s", e.Input, e.Reason)
}

// Parse reads a version from s. Whitespace around each component, such as
// a trailing newline, is ignored.
func Parse(s string) (Version, error) {
	fields := strings.Split(s, separator)
	if len(fields) != 3 {
		return Version{}, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("expected 3 dot-separated fields, got %d", len(fields)),
		}
	}

	var parts [3]uint64
	for i, field := range fields {
		field = strings.TrimSpace(field)
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return Version{}, &ParseError{
				Input:  s,
				Reason: fmt.Sprintf("field %d (%q) is not a non-negative integer", i+1, field),
			}
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Micro: parts[2]}, nil
}

// Bump applies flags to v in order major, minor, micro. Each step sees the
// resets made by the previous one, so all three flags on 5.9.9 give 6.1.1.
func Bump(v Version, flags Flags) Version {
	sv := *semver.New(v.Major, v.Minor, v.Micro, "", "")
	if flags.Major {
		sv = sv.IncMajor()
	}
	if flags.Minor {
		sv = sv.IncMinor()
	}
	if flags.Micro {
		sv = sv.IncPatch()
	}
	return Version{Major: sv.Major(), Minor: sv.Minor(), Micro: sv.Patch()}
}
