package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"fitbook/internal/auth"
	"fitbook/internal/errors"
	"fitbook/internal/metrics"
)

// IdentityKey is the echo context key under which the authenticated
// Identity is stored.
const IdentityKey = "identity"

// Authenticate returns middleware that extracts the bearer token and
// runs it through the Authenticator. Any failure short-circuits the
// request with an opaque 401; no handler body runs after it.
func Authenticate(authenticator *auth.Authenticator, recorder metrics.Recorder) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: IdentityKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authenticator.Authenticate(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			recorder.RecordAuthFailure()
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrInvalidToken.Error(),
				Code:  "INVALID_TOKEN",
			})
		},
	})
}

// RequireRoles returns middleware that allows the request through iff
// the authenticated identity's role is in the allow-list.
func RequireRoles(allowed auth.RoleSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrInvalidToken.Error(),
					Code:  "INVALID_TOKEN",
				})
			}
			if _, err := auth.Authorize(identity, allowed); err != nil {
				he := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the authenticated identity stored on the
// context, or nil when the request did not pass Authenticate.
func IdentityFrom(c echo.Context) *auth.Identity {
	identity, _ := c.Get(IdentityKey).(*auth.Identity)
	return identity
}
