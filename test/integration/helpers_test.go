//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to an isolated project checkout.
type testEnv struct {
	ProjectDir string // project root carrying both manifests
	BinDir     string // fake toolchain binaries, prepended to PATH
}

// defaultRootManifest is a realistic root package.json with keys before and
// after the version field. Tests that assert on the rewritten bytes rely on
// its exact shape.
const defaultRootManifest = `{
  "name": "@jupyterlite/javascript-kernel",
  "version": "1.4.0",
  "scripts": {
    "build": "jlpm build",
    "bump:js:version": "lerna version --no-push"
  },
  "private": true
}`

const defaultSecondaryManifest = `{
  "name": "@jupyterlite/javascript-kernel-extension",
  "version": "1.4.0"
}`

// setupTestEnv creates an isolated project directory with the dual-manifest
// layout and points the root discovery at it. The fake bin directory is
// prepended to PATH so it shadows any real jlpm.
func setupTestEnv(t *testing.T, rootManifest, secondaryManifest string) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain shims need /bin/sh, skipping")
	}

	env := &testEnv{
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}

	writeFile(t, filepath.Join(env.ProjectDir, "package.json"), rootManifest)
	writeFile(t, filepath.Join(env.ProjectDir, "packages", "javascript-kernel-extension", "package.json"), secondaryManifest)

	t.Setenv("RELVER_ROOT", env.ProjectDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	return env
}

// installJlpm places a fake jlpm script in the environment's bin directory.
// The script body runs under /bin/sh with the project root as working
// directory, matching how the real tool is invoked.
func installJlpm(t *testing.T, env *testEnv, body string) {
	t.Helper()
	path := filepath.Join(env.BinDir, "jlpm")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("writing fake jlpm: %v", err)
	}
}

// bumpScript returns a fake jlpm body that mimics the repository's
// bump:js:version script: it rewrites the extension manifest with the
// requested version and echoes a progress line.
func bumpScript() string {
	return `if [ "$1" != "bump:js:version" ] || [ -z "$2" ]; then
  echo "usage: jlpm bump:js:version <version>" >&2
  exit 1
fi
cat > packages/javascript-kernel-extension/package.json <<EOF
{
  "name": "@jupyterlite/javascript-kernel-extension",
  "version": "$2"
}
EOF
echo "bumped javascript packages to $2"
`
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the file's content or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data := readFile(t, path)
	if !strings.Contains(data, substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, data)
	}
}
