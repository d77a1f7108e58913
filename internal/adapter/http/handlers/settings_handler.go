package handlers

import (
	"errors"
	"net/http"

	request "stitchworks/internal/adapter/http/dto/request"
	response "stitchworks/internal/adapter/http/dto/response"
	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase"
	"stitchworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
)

// SettingsHandler handles HTTP requests for workshop configuration.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(s))
}

// PutSettings replaces the configuration record wholesale.
func (h *SettingsHandler) PutSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Put(c.Request.Context(), entities.Settings{
		BusinessName:      payload.BusinessName,
		Phone:             payload.Phone,
		Address:           payload.Address,
		CurrencyCode:      payload.CurrencyCode,
		LowStockThreshold: payload.LowStockThreshold,
	})
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(saved))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBusinessName),
		errors.Is(err, usecase.ErrInvalidCurrencyCode),
		errors.Is(err, usecase.ErrInvalidThreshold):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
