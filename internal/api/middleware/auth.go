package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/havenly/havenly-api/internal/api/metrics"
	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

// Context keys set by the Auth middleware.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxToken  = "bearer_token"
)

// TokenParser validates a raw bearer token and returns its claims. The role
// inside the returned claims is already parsed into the closed Role set, so
// downstream code never touches raw role strings.
type TokenParser interface {
	ParseToken(token string) (*ports.TokenClaims, error)
}

// RevocationChecker reports whether a token id has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer token and injects identity into the Echo context.
// Revocation lookups fail closed: if the revocation store is unreachable the
// request is rejected rather than trusted.
func Auth(parser TokenParser, revoker RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), claims.JTI)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not verify token")
			}
			if revoked {
				metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxToken, token)

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

// RoleFromContext returns the parsed role set by Auth, or an error when the
// middleware did not run.
func RoleFromContext(c echo.Context) (domain.Role, error) {
	role, ok := c.Get(CtxRole).(domain.Role)
	if !ok || role == "" {
		return "", errors.New("missing authentication claims")
	}
	return role, nil
}
