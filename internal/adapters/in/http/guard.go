package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"orders/internal/pkg/auth"
	"orders/internal/pkg/errs"
)

// identityContextKey is where the guard stores the authenticated identity
// for the handler behind it.
const identityContextKey = "identity"

// RequireScopes builds a guard middleware that authenticates the bearer
// credential and checks the required scopes before letting the request
// through. A missing or malformed Authorization header is unauthorized;
// a valid credential lacking a scope is forbidden.
func RequireScopes(
	authenticator *auth.TokenAuthenticator,
	authorizer *auth.ScopeAuthorizer,
	required ...string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errs.NewUnauthorizedError("Missing or invalid authorization token")
			}

			credential := strings.TrimPrefix(header, "Bearer ")
			if credential == header || credential == "" {
				return errs.NewUnauthorizedError("Missing or invalid authorization token")
			}

			identity, err := authenticator.Authenticate(credential)
			if err != nil {
				return err
			}

			if err := authorizer.Authorize(identity, required...); err != nil {
				return err
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// identityFromContext returns the identity the guard stored, or the zero
// identity on unguarded routes.
func identityFromContext(c echo.Context) auth.Identity {
	identity, _ := c.Get(identityContextKey).(auth.Identity)
	return identity
}
