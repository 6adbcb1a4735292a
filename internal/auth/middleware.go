package auth

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// CurrentUser returns the claims stored by the JWT middleware, if any.
func CurrentUser(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get("user").(*Claims)
	return claims, ok
}

// RequirePermission rejects requests whose authenticated role lacks the
// permission: 401 without claims, 403 with claims but without the permission.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "please authenticate")
			}
			if !HasPermission(claims.Role, permission) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RequireSelfOrPermission allows the request when the path parameter names the
// caller's own user id, or when the caller's role carries the permission.
func RequireSelfOrPermission(permission, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "please authenticate")
			}
			if id, err := strconv.Atoi(c.Param(param)); err == nil && uint(id) == claims.UserID {
				return next(c)
			}
			if !HasPermission(claims.Role, permission) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
