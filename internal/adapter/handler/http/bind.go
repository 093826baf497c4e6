package http

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// bindAndValidate decodes the request into req and runs the registered validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.FromHTTPError(err)
	}
	return c.Validate(req)
}
