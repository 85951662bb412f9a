package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gamevault/review-system/internal/api/metrics"
	"github.com/gamevault/review-system/internal/core/token"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth extracts the bearer token, verifies it, and injects the claim into
// the request context. Every verification failure maps to 401; the failure
// class (malformed, bad signature, expired) is only visible in logs and
// metrics.
func Auth(codec *token.Codec, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claim, err := codec.Verify(parts[1])
			if err != nil {
				reason := failureReason(err)
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, claim.Subject)
			c.Set(CtxUsername, claim.Username)
			c.Set(CtxRole, claim.Role)

			return next(c)
		}
	}
}

func failureReason(err error) string {
	switch err {
	case token.ErrExpired:
		return "expired"
	case token.ErrSignatureInvalid:
		return "signature_invalid"
	default:
		return "malformed"
	}
}
