package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/review-system/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty role proves the middleware
// ran on this route.
func ctxIdentity(c echo.Context) (userID, username, role string, err error) {
	role, _ = c.Get(middleware.CtxRole).(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get(middleware.CtxUserID).(string)
	username, _ = c.Get(middleware.CtxUsername).(string)
	return userID, username, role, nil
}
