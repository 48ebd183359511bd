package cli

import (
	"fmt"

	"github.com/relver-labs/relver/internal/version"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <version>",
	Short: "Print the compact form of a version string",
	Long: `Rewrite a JavaScript-style pre-release version to its compact form:
-alpha.N becomes aN, -beta.N becomes bN, and -rc.N becomes rcN. Versions
without a pre-release tag pass through unchanged.

  relver normalize 1.5.0-beta.2   # prints 1.5.0b2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.Normalize(args[0]))
		return nil
	},
}
