package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/agequiz/internal/app"
	"github.com/abhisek/agequiz/internal/catalog"
	"github.com/abhisek/agequiz/internal/config"
	"github.com/abhisek/agequiz/internal/logging"
)

// runApp resolves config, opens the log file and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	log.Info("starting", "version", displayVersion(version), "config", cfg.Source)

	return app.Run(app.Options{
		Catalog:   catalog.New(time.Now()),
		Logger:    log,
		AltScreen: !cfg.NoAltScreen,
	})
}
