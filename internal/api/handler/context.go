package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/devconnect-api/internal/api/middleware"
)

// principalID extracts the user ID injected by the Auth middleware. An empty
// value means the middleware did not run on this route; fail closed with 401
// before any service call.
func principalID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextKeyUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
