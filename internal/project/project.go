// Package project resolves the dual-manifest repository layout the CLI
// operates on: a root package.json plus the nested JS package manifest at
// packages/javascript-kernel-extension/package.json. The layout below the
// project root is fixed; only the root itself is discovered.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/relver-labs/relver/internal/branding"
)

// Manifest layout constants. These are the convention of the repositories
// this tool releases and are not configurable.
const (
	ManifestName    = "package.json"
	PackagesDir     = "packages"
	JSExtensionDir  = "javascript-kernel-extension"
)

// Project is a resolved repository root.
type Project struct {
	Root string
}

// Find resolves the project root. It checks the RELVER_ROOT environment
// variable first, then walks up from startDir to the nearest directory
// containing a package.json.
func Find(startDir string) (*Project, error) {
	if v := os.Getenv(branding.EnvVar("ROOT")); v != "" {
		return &Project{Root: v}, nil
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return &Project{Root: dir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("cannot determine project root: set %s or run from within a directory containing %s",
				branding.EnvVar("ROOT"), ManifestName)
		}
		dir = parent
	}
}

// FindFromWd resolves the project root starting at the current working directory.
func FindFromWd() (*Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}
	return Find(cwd)
}

// RootManifestPath returns the path to the root package.json.
func (p *Project) RootManifestPath() string {
	return filepath.Join(p.Root, ManifestName)
}

// SecondaryManifestPath returns the path to the JS extension's package.json.
func (p *Project) SecondaryManifestPath() string {
	return filepath.Join(p.Root, PackagesDir, JSExtensionDir, ManifestName)
}
