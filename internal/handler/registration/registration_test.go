package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gwhiite/form/internal/api"
	"github.com/Gwhiite/form/internal/form"
	"github.com/Gwhiite/form/internal/storage"
)

const validTechs = `[{"id":"t1","title":"Go","knowledge":"80"},{"id":"t2","title":"Rust","knowledge":"30"}]`

func validFields() map[string]string {
	return map[string]string{
		"name":     "ana maria",
		"email":    "USER@GMAIL.com",
		"password": "abc123",
		"techs":    validTechs,
	}
}

// newFormCtx builds a multipart request; a nil avatar omits the file part.
func newFormCtx(t *testing.T, e *echo.Echo, fields map[string]string, avatar []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if avatar != nil {
		fw, err := w.CreateFormFile("avatar", "me.png")
		require.NoError(t, err)
		_, err = fw.Write(avatar)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/registrations", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateRegistrationHandler(t *testing.T) {
	e := echo.New()
	schema := form.New("")
	logger := zap.NewNop()

	t.Run("bind error on malformed techs", func(t *testing.T) {
		fields := validFields()
		fields["techs"] = "not json"
		ctx, rec := newFormCtx(t, e, fields, []byte("img"))
		err := CreateRegistrationHandler(schema, &storage.FakeStorage{}, logger)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid form data")
	})

	t.Run("missing avatar", func(t *testing.T) {
		ctx, rec := newFormCtx(t, e, validFields(), nil)
		err := CreateRegistrationHandler(schema, &storage.FakeStorage{}, logger)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp api.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "validation failed", resp.Message)
		require.Equal(t, "an avatar file is required", resp.Fields["avatar"])
	})

	t.Run("validation errors carry field paths", func(t *testing.T) {
		fields := validFields()
		fields["email"] = "user@yahoo.com"
		fields["techs"] = `[{"id":"t1","title":"Go","knowledge":"40"},{"id":"t2","title":"","knowledge":"30"}]`
		ctx, rec := newFormCtx(t, e, fields, []byte("img"))
		err := CreateRegistrationHandler(schema, &storage.FakeStorage{}, logger)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp api.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "email must end with @gmail.com", resp.Fields["email"])
		require.Equal(t, "title must not be empty", resp.Fields["techs[1].title"])
	})

	t.Run("upload failure surfaces as bad gateway", func(t *testing.T) {
		store := &storage.FakeStorage{
			UploadFn: func(context.Context, string, io.Reader, int64, string) error {
				return errors.New("bucket gone")
			},
		}
		ctx, rec := newFormCtx(t, e, validFields(), []byte("img"))
		err := CreateRegistrationHandler(schema, store, logger)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadGateway, rec.Code)
		require.Contains(t, rec.Body.String(), "avatar upload failed")
	})

	t.Run("success uploads under the original filename and echoes the payload", func(t *testing.T) {
		var gotKey string
		var gotSize int64
		var gotBody []byte
		store := &storage.FakeStorage{
			UploadFn: func(_ context.Context, key string, r io.Reader, size int64, _ string) error {
				gotKey = key
				gotSize = size
				b, err := io.ReadAll(r)
				require.NoError(t, err)
				gotBody = b
				return nil
			},
		}
		ctx, rec := newFormCtx(t, e, validFields(), []byte("imgbytes"))
		err := CreateRegistrationHandler(schema, store, logger)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "me.png", gotKey)
		require.Equal(t, int64(len("imgbytes")), gotSize)
		require.Equal(t, []byte("imgbytes"), gotBody)

		var resp api.RegistrationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "me.png", resp.Avatar)
		require.Equal(t, "Ana Maria", resp.Name)
		require.Equal(t, "user@gmail.com", resp.Email)
		require.Equal(t, "abc123", resp.Password)
		require.Len(t, resp.Techs, 2)
		require.Equal(t, "t1", resp.Techs[0].ID)
		require.Equal(t, 80, resp.Techs[0].Knowledge)
	})
}
