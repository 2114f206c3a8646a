package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/priyanaka6261/property-portal-backend/internal/api/middleware"
	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id means the
// token was structurally valid but operationally unusable — reject with 401.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.UserID == 0 {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
