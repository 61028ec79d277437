package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// EmployeeIDKey is the echo context key holding the authenticated
// employee's numeric ID. API-key callers have no employee identity and
// the key stays unset.
const EmployeeIDKey = "employee_id"

// ActorEmployeeID returns the authenticated employee, if any.
func ActorEmployeeID(c echo.Context) (uint64, bool) {
	v, ok := c.Get(EmployeeIDKey).(uint64)
	return v, ok
}

// Auth admits requests carrying either the service API key or a valid
// bearer token. Token subjects are employee IDs minted at login.
func Auth(secret []byte, apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiKey != "" && c.Request().Header.Get("x-api-key") == apiKey {
				return next(c)
			}

			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(raw, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			tok, err := jwt.ParseWithClaims(strings.TrimPrefix(raw, "Bearer "), &jwt.RegisteredClaims{},
				func(t *jwt.Token) (any, error) { return secret, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			claims, ok := tok.Claims.(*jwt.RegisteredClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			id, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			c.Set(EmployeeIDKey, id)
			return next(c)
		}
	}
}

// APIKeyOnly guards the bootstrap endpoints (register, bulk imports,
// employee deletion) that the original system keyed off the shared secret.
func APIKeyOnly(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiKey == "" || c.Request().Header.Get("x-api-key") != apiKey {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			return next(c)
		}
	}
}
