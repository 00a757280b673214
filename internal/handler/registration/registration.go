package registration

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Gwhiite/form/internal/api"
	"github.com/Gwhiite/form/internal/form"
	"github.com/Gwhiite/form/internal/model"
	"github.com/Gwhiite/form/internal/storage"
)

// @Summary     Submit a registration
// @Description Validates the multipart registration form, uploads the avatar to object storage under its original filename, and echoes the validated payload
// @Tags        registrations
// @Accept      multipart/form-data
// @Produce     json
// @Param       avatar   formData file   true "Avatar image, 5MB max"
// @Param       name     formData string true "Full name, title-cased per word"
// @Param       email    formData string true "Email, lower-cased, must end with the required domain"
// @Param       password formData string true "Password, at least 6 characters"
// @Param       techs    formData string true "JSON array of {id,title,knowledge} rows, at least 2, one with knowledge above 50"
// @Success     201 {object} api.RegistrationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     422 {object} api.ValidationErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Router      /registrations [post]
func CreateRegistrationHandler(schema *form.Schema, store storage.Storage, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var draft form.Draft
		if err := c.Bind(&draft); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		// A missing file is not a bind error; the schema reports it.
		if fh, err := c.FormFile("avatar"); err == nil {
			draft.Avatar = fh
		}

		reg, errs := schema.Validate(&draft)
		if errs != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{
				Message: "validation failed",
				Fields:  map[string]string(errs),
			})
		}

		src, err := reg.Avatar.Open()
		if err != nil {
			logger.Error("open avatar", zap.String("file", reg.Avatar.Filename), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to read avatar"})
		}
		defer src.Close()

		key := reg.Avatar.Filename
		contentType := reg.Avatar.Header.Get("Content-Type")
		if err := store.Upload(c.Request().Context(), key, src, reg.Avatar.Size, contentType); err != nil {
			logger.Error("upload avatar", zap.String("key", key), zap.Error(err))
			return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: "avatar upload failed"})
		}
		logger.Info("avatar uploaded", zap.String("key", key), zap.Int64("size", reg.Avatar.Size))

		return c.JSON(http.StatusCreated, toResponse(reg))
	}
}

func toResponse(reg *model.Registration) api.RegistrationResponse {
	techs := make([]api.TechResponse, len(reg.Techs))
	for i, t := range reg.Techs {
		techs[i] = api.TechResponse{ID: t.ID, Title: t.Title, Knowledge: t.Knowledge}
	}
	return api.RegistrationResponse{
		Avatar:   reg.Avatar.Filename,
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		Techs:    techs,
	}
}
