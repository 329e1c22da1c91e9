package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Wikia/thanksmetoo/internal/app"
	"github.com/Wikia/thanksmetoo/internal/config"
)

// rootOptions is shared by every subcommand. The config is loaded once in
// PersistentPreRunE.
type rootOptions struct {
	load   func() (*config.Config, error)
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand(load func() (*config.Config, error)) *cobra.Command {
	opts := &rootOptions{load: load}

	cmd := &cobra.Command{
		Use:          "thanksctl",
		Short:        "Operate the thanks service",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.cfg = cfg
			opts.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newLogCommand(opts))
	cmd.AddCommand(newTokenCommand(opts))

	return cmd
}
