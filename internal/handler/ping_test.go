package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gwhiite/form/internal/storage"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("storage unhealthy", func(t *testing.T) {
		store := &storage.FakeStorage{
			PingFn: func(ctx context.Context) error { return errors.New("fail") },
		}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(store)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "storage unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		called := false
		store := &storage.FakeStorage{
			PingFn: func(ctx context.Context) error { called = true; return nil },
		}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(store)(ctx)
		require.NoError(t, err)
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}
