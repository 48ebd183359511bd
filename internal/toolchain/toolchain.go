package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/executor"
)

// JlpmBin is the package manager binary the bump workflow shells out to.
const JlpmBin = "jlpm"

// NodeBin is the JavaScript runtime jlpm itself runs on.
const NodeBin = "node"

// bumpScript is the package.json script that rewrites the JavaScript
// package versions.
const bumpScript = "bump:js:version"

// Runner invokes jlpm scripts inside a project checkout.
type Runner struct {
	// Stdout and Stderr receive the tool's live output; they default to
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// BumpJS runs `jlpm bump:js:version <version>` at the project root. The
// tool's output streams through while also being captured, so a failure can
// quote what the tool printed.
func (r *Runner) BumpJS(ctx context.Context, root, version string) error {
	if _, err := exec.LookPath(JlpmBin); err != nil {
		return fmt.Errorf("bumping JavaScript packages requires %s: %w", JlpmBin, err)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	result, err := executor.New(JlpmBin, bumpScript, version).Execute(ctx,
		executor.WithWorkingDir(root),
		executor.WithStdoutWriter(stdout),
		executor.WithStderrWriter(stderr),
	)
	if err != nil {
		if result != nil && strings.TrimSpace(result.Stderr) != "" {
			return fmt.Errorf("running %s %s %s: %w: %s",
				JlpmBin, bumpScript, version, err, strings.TrimSpace(result.Stderr))
		}
		return fmt.Errorf("running %s %s %s: %w", JlpmBin, bumpScript, version, err)
	}
	return nil
}

// Probe reports the version string a binary prints for --version. Used by
// environment diagnostics.
func Probe(ctx context.Context, bin string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", bin, err)
	}

	result, err := executor.New(path, "--version").Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("probing %s version: %w", bin, err)
	}
	return strings.TrimSpace(result.Stdout), nil
}
