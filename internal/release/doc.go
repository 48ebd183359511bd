// Package release drives the cross-manifest version bump. The JavaScript
// tooling bumps its own packages first; the new version is then read back
// from the kernel extension's manifest, its pre-release tag rewritten to
// compact form, and the result written into the root manifest. The root
// write happens last, so any earlier failure leaves the root untouched.
package release
