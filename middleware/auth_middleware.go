// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ssamratd571/localexplorer/models"
)

// RequireRole checks if the authenticated user has one of the allowed roles
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := ExtractRole(c)

			if role == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Authentication failed: role not found",
				})
			}

			for _, allowed := range allowedRoles {
				if role == allowed {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, models.Response{
				Status:  http.StatusForbidden,
				Message: "Access denied for your role",
			})
		}
	}
}

// RequireAdmin is shorthand for admin-only routes.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
