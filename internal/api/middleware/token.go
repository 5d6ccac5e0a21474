package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storefront/storefront-api/internal/core/domain"
)

const (
	// TokenQueryParam is the query parameter clients send the token in.
	TokenQueryParam = "accessToken"

	tokenContextKey = "access_token"
)

// AccessToken extracts the bearer token from the accessToken query parameter
// or, failing that, from an "Authorization: Bearer" header. Requests without
// a token are rejected as unauthorized; validating the token is left to the
// auth service.
func AccessToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.QueryParam(TokenQueryParam)
			if token == "" {
				token = bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			}
			if token == "" {
				return domain.ErrUnauthorized
			}

			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

// TokenFrom returns the token stored by AccessToken, or "".
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
