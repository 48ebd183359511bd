package cli

import (
	"github.com/relver-labs/relver/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps the root package.json of a JupyterLite kernel
repository in lockstep with the JavaScript kernel extension it ships.
The JavaScript tooling bumps its own packages first; relver then mirrors
the resulting version into the root manifest with the pre-release tag
rewritten to compact form (1.5.0-beta.2 becomes 1.5.0b2).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
