package api

import (
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/pgx5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"time"
)

type HealthChecker interface {
	HealthCheck() echo.HandlerFunc
}

type healthChecker struct {
	health *health.Health
}

func NewHealthChecker(version string, checks ...health.Config) (HealthChecker, error) {
	h, err := health.New(health.WithComponent(health.Component{Name: "org-structure", Version: version}))
	if err != nil {
		return nil, errors.Wrap(err, "create health checker")
	}

	for _, check := range checks {
		if err = h.Register(check); err != nil {
			return nil, errors.Wrapf(err, "register health check %s", check.Name)
		}
	}

	return &healthChecker{
		health: h,
	}, nil
}

// PostgresCheck opens a fresh connection to dsn on every check.
func PostgresCheck(dsn string) health.Config {
	return health.Config{
		Name:    "postgres",
		Timeout: 3 * time.Second,
		Check:   pgx5.New(pgx5.Config{DSN: dsn}),
	}
}

func (h *healthChecker) HealthCheck() echo.HandlerFunc {
	return echo.WrapHandler(h.health.Handler())
}
