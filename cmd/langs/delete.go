package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an installed language and its texts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := c.app.Languages(ctx)
			if err != nil {
				return err
			}
			lang, err := svc.FindByName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := svc.Delete(ctx, lang.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s (%s)\n", lang.Name, lang.ID)
			return nil
		},
	}
}
