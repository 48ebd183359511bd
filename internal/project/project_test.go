package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestFindInCurrentDir(t *testing.T) {
	t.Setenv("RELVER_ROOT", "")
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `{"version": "1.0.0"}`)

	p, err := Find(root)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if p.Root != root {
		t.Errorf("Root = %q, want %q", p.Root, root)
	}
}

func TestFindWalksUp(t *testing.T) {
	t.Setenv("RELVER_ROOT", "")
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `{"version": "1.0.0"}`)

	nested := filepath.Join(root, PackagesDir, JSExtensionDir, "src")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("creating nested dir: %v", err)
	}
	// The nested package has its own package.json; discovery stops at the
	// first manifest above the start directory, which is the JS package.
	writeFile(t, filepath.Join(root, PackagesDir, JSExtensionDir, ManifestName), `{"version": "1.0.0"}`)

	p, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := filepath.Join(root, PackagesDir, JSExtensionDir)
	if p.Root != want {
		t.Errorf("Root = %q, want %q", p.Root, want)
	}
}

func TestFindEnvOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv("RELVER_ROOT", override)

	// No package.json anywhere near startDir; the override wins outright.
	p, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if p.Root != override {
		t.Errorf("Root = %q, want %q", p.Root, override)
	}
}

func TestFindFailsWithoutManifest(t *testing.T) {
	t.Setenv("RELVER_ROOT", "")

	// An isolated temp tree with no package.json on the path to /.
	// Walking up from here must eventually fail. Temp dirs live under
	// paths that do not contain a package.json in practice.
	_, err := Find(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing project root, got nil")
	}
}

func TestManifestPaths(t *testing.T) {
	p := &Project{Root: filepath.Join("some", "repo")}

	wantRoot := filepath.Join("some", "repo", "package.json")
	if got := p.RootManifestPath(); got != wantRoot {
		t.Errorf("RootManifestPath = %q, want %q", got, wantRoot)
	}

	wantSecondary := filepath.Join("some", "repo", "packages", "javascript-kernel-extension", "package.json")
	if got := p.SecondaryManifestPath(); got != wantSecondary {
		t.Errorf("SecondaryManifestPath = %q, want %q", got, wantSecondary)
	}
}
