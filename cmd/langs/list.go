package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

func newListCmd(c *cli) *cobra.Command {
	var (
		installed bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List predefined (or installed) languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				langs []*domain.Language
				err   error
			)
			if installed {
				svc, svcErr := c.app.Languages(ctx)
				if svcErr != nil {
					return svcErr
				}
				langs, err = svc.ListInstalled(ctx)
			} else {
				langs, err = c.app.Catalog.List(ctx)
			}
			if err != nil {
				return err
			}

			return writeProfiles(cmd.OutOrStdout(), format, langs)
		},
	}

	cmd.Flags().BoolVar(&installed, "installed", false, "list languages from the store instead of the catalog")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format (table|json)")
	return cmd
}
