package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-langs/internal/parser"
)

func newTokenizeCmd(c *cli) *cobra.Command {
	var (
		langName  string
		installed bool
		file      string
		format    string
		lower     bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize --lang NAME [TEXT...]",
		Short: "Split text into tokens with a language's parser",
		Long: `Tokenize splits text into word and non-word tokens using the parser and
rules of a language. Text is taken from the arguments, from --file, or from
standard input when neither is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			text, err := readText(cmd, args, file)
			if err != nil {
				return err
			}

			lang, err := c.findLanguage(ctx, langName, installed)
			if err != nil {
				return err
			}

			if lower {
				var folded string
				if installed {
					svc, svcErr := c.app.Languages(ctx)
					if svcErr != nil {
						return svcErr
					}
					folded, err = svc.Lowercase(ctx, lang.ID, text)
				} else {
					folded, err = c.app.Parsers.Lowercase(lang, text)
				}
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), folded)
				return err
			}

			var tokens []parser.Token
			if installed {
				svc, svcErr := c.app.Languages(ctx)
				if svcErr != nil {
					return svcErr
				}
				tokens, err = svc.Tokenize(ctx, lang.ID, text)
			} else {
				tokens, err = c.app.Parsers.Tokenize(lang, text)
			}
			if err != nil {
				return err
			}

			return writeTokens(cmd.OutOrStdout(), format, tokens)
		},
	}

	cmd.Flags().StringVarP(&langName, "lang", "l", "", "language name (case-insensitive)")
	cmd.Flags().BoolVar(&installed, "installed", false, "use the language from the store")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file")
	cmd.Flags().StringVar(&format, "format", formatPretty, "output format (pretty|words|json)")
	cmd.Flags().BoolVar(&lower, "lower", false, "print the text lowercased instead of tokens")
	_ = cmd.MarkFlagRequired("lang")
	return cmd
}

func readText(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("give text as arguments or --file, not both")
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
