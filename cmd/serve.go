package main

import (
	"context"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/yakoovad/orgstructure/internal/api"
	"github.com/yakoovad/orgstructure/internal/auth"
	"github.com/yakoovad/orgstructure/internal/db"
	"github.com/yakoovad/orgstructure/internal/repository"
	"github.com/yakoovad/orgstructure/internal/service"
	"github.com/yakoovad/orgstructure/internal/validation"
	"go.uber.org/zap"
	"net/http"
	"os/signal"
	"syscall"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting application", zap.String("version", version))

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	logger.Info("database connection established")

	if cfg.Database.AutoMigrate {
		if err = db.Migrate(ctx, pool); err != nil {
			return err
		}
		v, _ := db.MigrationVersion(ctx, pool)
		logger.Info("database schema up to date", zap.Int64("version", v))
	}

	transactor := db.NewPgxTransactor(pool)
	store := repository.NewStore(pool)
	validator := validation.New()
	catalog := service.NewCatalog(transactor, validator, store)

	health, err := api.NewHealthChecker(version, api.PostgresCheck(cfg.Database.DSN()))
	if err != nil {
		return err
	}

	handler := api.NewHandler(logger, catalog).
		WithValidator(validator).
		WithHealthChecker(health).
		WithMetrics(api.NewMetrics()).
		WithBasePath(cfg.Server.BasePath).
		WithAllowedOrigins(cfg.CORS.Origins())

	if cfg.Auth.TokenSecret != "" {
		handler.WithIssuer(auth.NewIssuer(cfg.Auth.TokenSecret))
	} else {
		logger.Warn("auth.token_secret is empty, API is not protected")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	handler.RegisterRoutes(e)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.ServerAddr()), zap.String("base_path", cfg.Server.BasePath))
		if err := e.Start(cfg.ServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return errors.Wrap(err, "start server")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown server")
	}
	return nil
}
