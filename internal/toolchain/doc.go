// Package toolchain invokes the JavaScript build tooling that owns the
// package versions under packages/. The release flow shells out to jlpm
// rather than editing those manifests itself, so the JavaScript side stays
// the single authority on how its own version strings are written.
package toolchain
