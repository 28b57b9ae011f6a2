package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/yakoovad/orgstructure/internal/db"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			pool, err := db.NewPool(ctx, cfg.Database)
			if err != nil {
				return errors.Wrap(err, "connect to database")
			}
			defer pool.Close()

			if err = db.Migrate(ctx, pool); err != nil {
				return err
			}

			v, err := db.MigrationVersion(ctx, pool)
			if err != nil {
				return err
			}
			logger.Info("migrations applied", zap.Int64("version", v))
			return nil
		},
	}
}
