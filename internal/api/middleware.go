package api

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/orgstructure/pkg/logger"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const loggerKey = "logger"

// quietRoutes are polled by infrastructure and logged at debug level.
var quietRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// ZapLoggerMiddleware attaches a request scoped logger to the echo and request
// contexts and writes one line per request.
func ZapLoggerMiddleware(l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqLogger := l.With(
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("route", c.Path()),
			)
			c.Set(loggerKey, reqLogger)
			c.SetRequest(req.WithContext(logger.WithLogger(req.Context(), reqLogger)))

			err := next(c)

			logRequest(reqLogger, c, err, time.Since(start))
			return err
		}
	}
}

func logRequest(l *zap.Logger, c echo.Context, err error, latency time.Duration) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	} else if err != nil {
		status = http.StatusInternalServerError
	}

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("uri", req.RequestURI),
		zap.String("remote_ip", c.RealIP()),
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.Int64("bytes_in", req.ContentLength),
		zap.Int64("bytes_out", res.Size),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	switch {
	case status >= http.StatusInternalServerError:
		l.Error("request failed", fields...)
	case status >= http.StatusBadRequest:
		l.Warn("request rejected", fields...)
	case quietRoutes[c.Path()]:
		l.Debug("request completed", fields...)
	default:
		l.Info("request completed", fields...)
	}
}

// GetLoggerFromContext returns the logger set by ZapLoggerMiddleware.
func GetLoggerFromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
