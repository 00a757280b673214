// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Gwhiite/form/internal/form"
	"github.com/Gwhiite/form/internal/handler"
	"github.com/Gwhiite/form/internal/handler/registration"
	"github.com/Gwhiite/form/internal/storage"
	"github.com/Gwhiite/form/internal/web"
)

// Setup registers the form page and the API routes.
func Setup(e *echo.Echo, schema *form.Schema, store storage.Storage, logger *zap.Logger) {
	e.GET("/", web.PageHandler())

	api := e.Group("/api")
	api.GET("/ping", handler.PingHandler(store))
	api.POST("/registrations", registration.CreateRegistrationHandler(schema, store, logger))
}
