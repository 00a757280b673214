// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gwhiite/form/internal/api"
	"github.com/Gwhiite/form/internal/storage"
)

// PingResponse is the health-check reply.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// @Summary     Health Check
// @Description Returns pong and verifies the avatar bucket is reachable
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(store storage.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "storage unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
