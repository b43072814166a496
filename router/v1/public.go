package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetVersion GET /version
func (h *Handlers) GetVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"version":  h.Version,
		"revision": h.Revision,
	})
}

// GetDefaultColors GET /colors
func (h *Handlers) GetDefaultColors(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Icon.DefaultColors())
}
