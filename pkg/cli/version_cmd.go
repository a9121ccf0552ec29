package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lantern-site/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "lantern-site %s (commit: %s)\n", version.Version, version.Commit)
			return nil
		},
	}
}
