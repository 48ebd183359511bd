package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// Info is the informational breakdown of a semver version string, used by
// status output. Normalized root-manifest versions (1.2.0a3) are not semver
// and never produce an Info.
type Info struct {
	Major      uint64 `json:"major"`
	Minor      uint64 `json:"minor"`
	Patch      uint64 `json:"patch"`
	Prerelease string `json:"prerelease,omitempty"`
}

// Describe parses a semver version string and returns its breakdown.
func Describe(v string) (*Info, error) {
	sv, err := parseSemver(v)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", v, err)
	}
	return &Info{
		Major:      sv.Major(),
		Minor:      sv.Minor(),
		Patch:      sv.Patch(),
		Prerelease: sv.Prerelease(),
	}, nil
}

// IsPrerelease reports whether v carries a semver pre-release component.
// Returns false for strings that do not parse as semver.
func IsPrerelease(v string) bool {
	sv, err := parseSemver(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() != ""
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(v string) (*semver.Version, error) {
	v = strings.TrimPrefix(v, "v")
	return semver.NewVersion(v)
}
