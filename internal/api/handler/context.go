package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenly/havenly-api/internal/api/middleware"
	"github.com/havenly/havenly-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both a parsed role and
// a user id must be present, otherwise the token is structurally valid but
// operationally unusable.
func ctxIdentity(c echo.Context) (role domain.Role, userID string, err error) {
	role, roleErr := middleware.RoleFromContext(c)
	if roleErr != nil {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	return role, userID, nil
}

// ctxBearerToken returns the raw bearer token stored by the Auth middleware.
func ctxBearerToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.CtxToken).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return token, nil
}
