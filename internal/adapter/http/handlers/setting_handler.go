package handlers

import (
	"errors"
	"net/http"

	request "peritaje_crm/internal/adapter/http/dto/request"
	response "peritaje_crm/internal/adapter/http/dto/response"
	"peritaje_crm/internal/usecase"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingPayload = pkg.NewDomainErrorSimple("INVALID_SETTING_INPUT", "Invalid setting payload", http.StatusBadRequest)

type SettingHandler struct {
	usecase usecase.ISettingUseCase
}

func NewSettingHandler(uc usecase.ISettingUseCase) *SettingHandler {
	return &SettingHandler{usecase: uc}
}

func (h *SettingHandler) ListSettings(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSettingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromSettings(items)))
}

func (h *SettingHandler) GetSetting(c *gin.Context) {
	found, err := h.usecase.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		appErr := mapSettingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromSetting(found)))
}

// PutSetting upserts; there is no separate create.
func (h *SettingHandler) PutSetting(c *gin.Context) {
	var payload request.PutSettingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingPayload.HTTPStatus, errInvalidSettingPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Put(c.Request.Context(), c.Param("key"), payload.Value)
	if err != nil {
		appErr := mapSettingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromSetting(saved)))
}

func mapSettingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSettingKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSettingNotFound):
		return pkg.NewDomainErrorSimple("SETTING_NOT_FOUND", "Setting not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
