package cli

import "runtime/debug"

// Version is set at build time with
// -ldflags "-X github.com/fsmiamoto/bumpver/internal/cli.Version=<tag>".
var Version = "dev"

// VersionString returns Version, falling back to the module version that
// `go install pkg@version` records in the binary.
func VersionString() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
