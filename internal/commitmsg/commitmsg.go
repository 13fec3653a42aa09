// Package commitmsg maps a Conventional Commits message to bump flags.
package commitmsg

import (
	"fmt"
	"strings"

	cc "github.com/leodido/go-conventionalcommits"
	"github.com/leodido/go-conventionalcommits/parser"

	"github.com/fsmiamoto/bumpver/internal/version"
)

// Flags parses message and returns the component it asks to bump:
// breaking changes bump major, feat bumps minor and fix bumps micro.
// Other valid types return no flags.
func Flags(message string) (version.Flags, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return version.Flags{}, fmt.Errorf("empty commit message")
	}

	m := parser.NewMachine(parser.WithTypes(cc.TypesConventional))
	msg, err := m.Parse([]byte(message))
	if err != nil {
		return version.Flags{}, fmt.Errorf("parse commit message: %w", err)
	}

	switch msg.VersionBump(cc.DefaultStrategy) {
	case cc.MajorVersion:
		return version.Flags{Major: true}, nil
	case cc.MinorVersion:
		return version.Flags{Minor: true}, nil
	case cc.PatchVersion:
		return version.Flags{Micro: true}, nil
	default:
		return version.Flags{}, nil
	}
}
