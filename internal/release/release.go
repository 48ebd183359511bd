package release

import (
	"context"

	"github.com/relver-labs/relver/internal/manifest"
	"github.com/relver-labs/relver/internal/project"
	"github.com/relver-labs/relver/internal/version"
)

// Bumper runs the JavaScript-side version bump. *toolchain.Runner is the
// production implementation.
type Bumper interface {
	BumpJS(ctx context.Context, root, version string) error
}

// Synchronizer runs a version bump end to end for one project.
type Synchronizer struct {
	Project *project.Project
	Tool    Bumper
}

// Result describes a completed bump.
type Result struct {
	Requested string // version handed to the JavaScript tooling
	Secondary string // version the JavaScript tooling recorded
	Root      string // normalized version written to the root manifest
	Previous  string // root manifest version before the write
}

// Sync bumps the JavaScript packages to target, reads back the version the
// tooling recorded, and mirrors its normalized form into the root manifest.
// Every step is fatal on failure; nothing is retried or rolled back.
func (s *Synchronizer) Sync(ctx context.Context, target string) (*Result, error) {
	if err := s.Tool.BumpJS(ctx, s.Project.Root, target); err != nil {
		return nil, err
	}

	secondary, err := manifest.ReadVersion(s.Project.SecondaryManifestPath())
	if err != nil {
		return nil, err
	}

	normalized := version.Normalize(secondary)

	previous, err := manifest.SetVersion(s.Project.RootManifestPath(), normalized)
	if err != nil {
		return nil, err
	}

	return &Result{
		Requested: target,
		Secondary: secondary,
		Root:      normalized,
		Previous:  previous,
	}, nil
}

// Status is the version state of both manifests at a point in time.
type Status struct {
	RootVersion       string `json:"root_version"`
	SecondaryVersion  string `json:"secondary_version"`
	NormalizedVersion string `json:"normalized_version"`
	InSync            bool   `json:"in_sync"`
}

// Inspect reads both manifests and reports whether the root version mirrors
// the normalized JavaScript package version.
func Inspect(p *project.Project) (*Status, error) {
	rootVersion, err := manifest.ReadVersion(p.RootManifestPath())
	if err != nil {
		return nil, err
	}

	secondaryVersion, err := manifest.ReadVersion(p.SecondaryManifestPath())
	if err != nil {
		return nil, err
	}

	normalized := version.Normalize(secondaryVersion)

	return &Status{
		RootVersion:       rootVersion,
		SecondaryVersion:  secondaryVersion,
		NormalizedVersion: normalized,
		InSync:            rootVersion == normalized,
	}, nil
}
