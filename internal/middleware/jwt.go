package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-box-office/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// stores the user ID (uint64) and role (string) in the context under
// "user_id" and "role".  The secret must match the one used when issuing
// tokens.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return Abort(c, http.StatusUnauthorized, "missing_token")
			}
			claims, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return Abort(c, http.StatusUnauthorized, "invalid_token")
			}
			uid, _ := claims.UserID() // validated by ParseAccessToken
			c.Set("user_id", uid)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
