package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-langs/internal/app"
	"github.com/heartmarshall/myenglish-langs/internal/config"
	"github.com/heartmarshall/myenglish-langs/pkg/ctxutil"
)

// cli carries the state built by the root command for its subcommands.
type cli struct {
	configPath string
	logLevel   string
	catalogDir string

	app *app.App
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:           "langs",
		Short:         "Language profiles and tokenization",
		Long:          `langs lists, installs and applies the tokenization profiles of the supported languages.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&c.catalogDir, "catalog-dir", "", "override the predefined definitions directory")

	root.AddCommand(
		newListCmd(c),
		newShowCmd(c),
		newInstallCmd(c),
		newDeleteCmd(c),
		newTokenizeCmd(c),
	)

	return root, c
}

func (c *cli) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFrom(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.catalogDir != "" {
		cfg.Catalog.Dir = c.catalogDir
	}

	logger := app.NewLogger(cfg.Log)
	c.app = app.New(cfg, logger)

	cmd.SetContext(ctxutil.WithRunID(cmd.Context(), uuid.New().String()))

	logger.DebugContext(cmd.Context(), "command started",
		slog.String("command", cmd.CommandPath()),
		slog.String("version", app.Version),
	)
	return nil
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
	}
}
