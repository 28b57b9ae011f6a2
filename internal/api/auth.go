package api

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/orgstructure/internal/auth"
	"github.com/yakoovad/orgstructure/pkg/logger"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// AuthMiddleware admits requests carrying a bearer token of one of the allowed
// types. A nil issuer disables the check.
func AuthMiddleware(issuer *auth.Issuer, allowed ...auth.TokenType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if issuer == nil {
			return next
		}
		return func(c echo.Context) error {
			l := logger.FromContext(c.Request().Context())

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token", Code: "UNAUTHORIZED"})
			}

			claims, err := issuer.Authorize(strings.TrimPrefix(header, bearerPrefix), allowed...)
			if err != nil {
				l.Warn("request rejected", zap.Error(err))
				if errors.Is(err, auth.ErrForbidden) {
					return c.JSON(http.StatusForbidden, errorResponse{Error: "insufficient permissions", Code: "FORBIDDEN"})
				}
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid token", Code: "UNAUTHORIZED"})
			}

			if claims.Subject != "" {
				l = l.With(zap.String("subject", claims.Subject))
				c.Set(loggerKey, l)
				c.SetRequest(c.Request().WithContext(logger.WithLogger(c.Request().Context(), l)))
			}
			return next(c)
		}
	}
}
