package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

func newInstallCmd(c *cli) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "install [NAME...]",
		Short: "Install predefined languages into the store",
		Args: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("give language names or --all, not both")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			svc, err := c.app.Languages(ctx)
			if err != nil {
				return err
			}

			names := args
			if all {
				langs, err := svc.ListPredefined(ctx)
				if err != nil {
					return err
				}
				for _, l := range langs {
					names = append(names, l.Name)
				}
			}

			var failed int
			for _, name := range names {
				lang, err := svc.InstallPredefined(ctx, name)
				switch {
				case err == nil:
					fmt.Fprintf(out, "installed %s (%s)\n", lang.Name, lang.ID)
				case all && (errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrUnknownParser)):
					fmt.Fprintf(out, "skipped %s: %v\n", name, err)
				default:
					fmt.Fprintf(cmd.ErrOrStderr(), "install %s: %v\n", name, err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d languages not installed", failed, len(names))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "install every predefined language with a registered parser")
	return cmd
}
