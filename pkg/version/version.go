// Package version exposes the rowdrawer build version.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// These are set at build time with -ldflags "-X ...".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = ""
)

// GetVersion returns the build version, normalised when it is valid semver.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// IsRelease reports whether the build version is a semver release without a prerelease tag.
func IsRelease() bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}
