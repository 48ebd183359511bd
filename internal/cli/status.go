package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/relver-labs/relver/internal/config"
	"github.com/relver-labs/relver/internal/project"
	"github.com/relver-labs/relver/internal/release"
	"github.com/relver-labs/relver/internal/version"
	"github.com/spf13/cobra"
)

var (
	statusJSON  bool
	statusCheck bool
)

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	statusCmd.Flags().BoolVar(&statusCheck, "check", false, "Exit non-zero when the root manifest is out of sync")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the version state of both manifests",
	Long: `Read both manifests and report the root version, the kernel extension
version, its compact form, and whether the root is in sync.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	p, err := project.FindFromWd()
	if err != nil {
		return err
	}

	status, err := release.Inspect(p)
	if err != nil {
		return err
	}

	useJSON := statusJSON
	if !cmd.Flags().Changed("json") {
		config.Load()
		useJSON = config.Get(config.KeyStatusFormat) == "json"
	}

	if useJSON {
		out, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling status: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		printStatus(cmd.OutOrStdout(), status)
	}

	if statusCheck && !status.InSync {
		return fmt.Errorf("root manifest is out of sync: have %s, want %s",
			status.RootVersion, status.NormalizedVersion)
	}
	return nil
}

// printStatus renders the text form of a status report.
func printStatus(w io.Writer, status *release.Status) {
	fmt.Fprintf(w, "Root version:      %s\n", status.RootVersion)
	fmt.Fprintf(w, "Extension version: %s\n", status.SecondaryVersion)
	fmt.Fprintf(w, "Compact form:      %s\n", status.NormalizedVersion)
	if status.InSync {
		fmt.Fprintln(w, "In sync:           yes")
	} else {
		fmt.Fprintln(w, "In sync:           no")
	}

	// Semver breakdown of the extension version, when it parses.
	if info, err := version.Describe(status.SecondaryVersion); err == nil {
		fmt.Fprintf(w, "Extension semver:  major=%d minor=%d patch=%d", info.Major, info.Minor, info.Patch)
		if info.Prerelease != "" {
			fmt.Fprintf(w, " prerelease=%s", info.Prerelease)
		}
		fmt.Fprintln(w)
	}
}
