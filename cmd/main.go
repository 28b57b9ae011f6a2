package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/yakoovad/orgstructure/internal/config"
	"github.com/yakoovad/orgstructure/pkg/logger"
	"go.uber.org/zap"
	"os"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "orgstructure",
		Short:         "Organization structure service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newTokenCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the process logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	l, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, l, nil
}
