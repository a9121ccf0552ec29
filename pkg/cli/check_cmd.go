package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a site content file",
		Long:  "Parses and validates a content document without serving it. With no argument the embedded document is checked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			site, err := loadSite(path)
			if err != nil {
				return err
			}

			source := "embedded document"
			if path != "" {
				source = path
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s OK: %d install options, %d features\n",
				source, len(site.Install), len(site.Features))
			return nil
		},
	}
}
