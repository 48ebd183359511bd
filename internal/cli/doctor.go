package cli

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/relver-labs/relver/internal/manifest"
	"github.com/relver-labs/relver/internal/project"
	"github.com/relver-labs/relver/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	checkToolchain bool
	checkManifests bool
	doctorManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkToolchain, "check-toolchain", false, "Verify jlpm and node are available")
	doctorCmd.Flags().BoolVar(&checkManifests, "check-manifests", false, "Validate both project manifests")
	doctorCmd.Flags().StringVar(&doctorManifest, "manifest", "", "Validate a manifest file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the release environment",
	Long:  `Run diagnostic checks on the JavaScript toolchain and the project manifests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkToolchain || checkManifests || doctorManifest != ""

		// If no specific flag, run all checks.
		if !anyFlag {
			runAllChecks(cmd.Context())
			return nil
		}

		if checkToolchain {
			runToolchainCheck(cmd.Context())
		}
		if checkManifests {
			if err := runManifestsCheck(); err != nil {
				return err
			}
		}
		if doctorManifest != "" {
			if err := runManifestCheck(doctorManifest); err != nil {
				return err
			}
		}

		return nil
	},
}

func runAllChecks(ctx context.Context) {
	runToolchainCheck(ctx)
	if err := runManifestsCheck(); err != nil {
		fmt.Printf("[WARN] Manifest check failed: %v\n", err)
	}
}

func runToolchainCheck(ctx context.Context) {
	fmt.Println("Toolchain check:")
	checkBinary(ctx, toolchain.NodeBin)
	checkBinary(ctx, toolchain.JlpmBin)
}

func checkBinary(ctx context.Context, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return
	}
	if v, err := toolchain.Probe(ctx, name); err == nil && v != "" {
		fmt.Printf("  [ OK ] %s %s at %s\n", name, v, path)
		return
	}
	fmt.Printf("  [ OK ] %s found at %s\n", name, path)
}

func runManifestsCheck() error {
	fmt.Println("Manifest check:")

	p, err := project.FindFromWd()
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return err
	}
	fmt.Printf("  [ OK ] project root at %s\n", p.Root)

	failures := 0
	for _, path := range []string{p.RootManifestPath(), p.SecondaryManifestPath()} {
		if err := checkManifestFile(p.Root, path); err != nil {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d manifest(s) failed validation", failures)
	}
	return nil
}

func checkManifestFile(root, path string) error {
	display := path
	if rel, err := filepath.Rel(root, path); err == nil {
		display = rel
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %s: %v\n", display, err)
		return err
	}
	if !result.Valid {
		fmt.Printf("  [FAIL] %s: %d validation issue(s)\n", display, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Printf("    - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("manifest %s is invalid", display)
	}

	m, err := manifest.Parse(path)
	if err != nil || m.Name == "" {
		fmt.Printf("  [ OK ] %s\n", display)
		return nil
	}
	fmt.Printf("  [ OK ] %s: %s (v%s)\n", display, m.Name, m.Version)
	return nil
}

func runManifestCheck(path string) error {
	fmt.Printf("Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		m, err := manifest.Parse(path)
		if err != nil || m.Name == "" {
			fmt.Printf("  [ OK ] Valid manifest\n")
			return nil
		}
		fmt.Printf("  [ OK ] Valid manifest: %s (v%s)\n", m.Name, m.Version)
		return nil
	}

	// Report validation issues.
	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
