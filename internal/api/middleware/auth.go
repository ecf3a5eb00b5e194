package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell-labs/notes-api/internal/api/metrics"
	"github.com/inkwell-labs/notes-api/internal/core/ports"
	"github.com/inkwell-labs/notes-api/internal/core/token"
)

// PrincipalKey is the echo context key under which Auth stores the resolved
// *domain.User.
const PrincipalKey = "principal"

// uniform 401 message: the reason (missing header, expired, invalid, deleted
// user) is only distinguishable in the logs.
const unauthorizedMsg = "not authorized"

// Auth is the single enforcement point for bearer authentication. It extracts
// the token, verifies it, resolves the principal (without its password hash),
// and attaches it to the request context. Every failure is a 401.
func Auth(tokens *token.Manager, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMsg)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMsg)
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				reason := "invalid"
				if errors.Is(err, token.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.TokenVerificationsTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMsg)
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			// The account may have been deleted after the token was issued.
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				log.Debug().Str("user_id", userID).Msg("token principal not found")
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMsg)
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}
