package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
)

// claimsContextKey is where Auth stores the resolved claims on the request.
const claimsContextKey = "auth_claims"

// TokenValidator resolves a bearer token to claims, failing closed on any
// malformed, tampered, or expired token.
type TokenValidator interface {
	ValidateToken(token string) (domain.Claims, error)
}

// Auth validates the bearer token and injects the claims into context.
func Auth(tokens TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom extracts the claims injected by Auth. The boolean is false when
// the middleware did not run on this route.
func ClaimsFrom(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(domain.Claims)
	return claims, ok
}
