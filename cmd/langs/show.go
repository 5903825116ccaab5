package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-langs/internal/definition"
	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

func newShowCmd(c *cli) *cobra.Command {
	var installed bool

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a language as a definition document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := c.findLanguage(cmd.Context(), args[0], installed)
			if err != nil {
				return err
			}

			doc, err := definition.Marshal(lang)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if lang.IsPersisted() {
				fmt.Fprintf(out, "# id: %s\n", lang.ID)
			}
			_, err = out.Write(doc)
			return err
		},
	}

	cmd.Flags().BoolVar(&installed, "installed", false, "read the language from the store")
	return cmd
}

// findLanguage looks name up in the store or in the catalog.
func (c *cli) findLanguage(ctx context.Context, name string, installed bool) (*domain.Language, error) {
	if !installed {
		return c.app.Catalog.Find(ctx, name)
	}
	svc, err := c.app.Languages(ctx)
	if err != nil {
		return nil, err
	}
	return svc.FindByName(ctx, name)
}
