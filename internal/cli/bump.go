package cli

import (
	"fmt"

	"github.com/relver-labs/relver/internal/project"
	"github.com/relver-labs/relver/internal/release"
	"github.com/relver-labs/relver/internal/toolchain"
	"github.com/relver-labs/relver/internal/version"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bumpCmd)
}

var bumpCmd = &cobra.Command{
	Use:   "bump <version>",
	Short: "Bump the JavaScript packages and sync the root manifest",
	Long: `Bump runs the repository's own version tooling (jlpm bump:js:version) with
the given version, reads back what the tooling recorded for the kernel
extension, and writes its compact form into the root package.json.

  relver bump 1.5.0          # plain release
  relver bump 1.5.0-beta.2   # root manifest ends up at 1.5.0b2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.FindFromWd()
		if err != nil {
			return err
		}

		s := &release.Synchronizer{
			Project: p,
			Tool:    &toolchain.Runner{},
		}

		result, err := s.Sync(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Synchronized root manifest to %s\n", result.Root)
		if result.Previous != result.Root {
			if _, cmpErr := version.Compare(result.Previous, result.Root); cmpErr == nil {
				fmt.Printf("Root version: %s -> %s\n", result.Previous, result.Root)
			}
		}
		return nil
	},
}
