package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenly/havenly-api/internal/core/domain"
)

// RBAC enforces role-based access control against the parsed role injected by
// Auth. Requests without a parsed role (Auth not run, or a forged context)
// are rejected as unauthorized, not forbidden.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := RoleFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
