// Package version provides the pre-release tag normalization shared by the
// bump pipeline and informational semver helpers for status output.
//
// The JS package tracks versions in semver form (1.2.0-alpha.3); the root
// manifest mirrors them in the compact form Python packaging expects
// (1.2.0a3). Normalize maps the former onto the latter.
package version

import "strings"

// Pre-release markers in their semver spelling and the compact replacement
// each one collapses to.
const (
	alphaMarker = "-alpha."
	betaMarker  = "-beta."
	rcMarker    = "-rc."

	alphaCompact = "a"
	betaCompact  = "b"
	rcCompact    = "rc"
)

// Normalize rewrites semver pre-release tags into their compact form:
// "1.2.0-alpha.3" -> "1.2.0a3", "2.0.0-beta.1" -> "2.0.0b1",
// "3.1.0-rc.2" -> "3.1.0rc2". Strings without a marker pass through
// unchanged.
//
// The three replacements are literal substring substitutions applied
// sequentially in the order alpha, beta, rc, each to the result of the
// previous one. Well-formed versions carry at most one marker, so the
// ordering only matters for inputs that were never valid to begin with;
// those are rewritten rather than rejected.
func Normalize(v string) string {
	v = strings.ReplaceAll(v, alphaMarker, alphaCompact)
	v = strings.ReplaceAll(v, betaMarker, betaCompact)
	v = strings.ReplaceAll(v, rcMarker, rcCompact)
	return v
}
