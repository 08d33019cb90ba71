package handler

import (
	"github.com/labstack/echo/v4"

	"fitbook/internal/errors"
)

// httpError maps a domain error to an echo HTTP error with the
// standard response payload.
func httpError(err error) *echo.HTTPError {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
