// Package web serves the embedded registration form page.
package web

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed form.html
var formHTML []byte

// PageHandler serves the single-page registration form.
func PageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, formHTML)
	}
}
