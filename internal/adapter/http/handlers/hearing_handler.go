package handlers

import (
	"errors"
	"net/http"

	request "peritaje_crm/internal/adapter/http/dto/request"
	response "peritaje_crm/internal/adapter/http/dto/response"
	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidHearingPayload = pkg.NewDomainErrorSimple("INVALID_HEARING_INPUT", "Invalid hearing payload", http.StatusBadRequest)

type HearingHandler struct {
	usecase usecase.IHearingUseCase
}

func NewHearingHandler(uc usecase.IHearingUseCase) *HearingHandler {
	return &HearingHandler{usecase: uc}
}

func (h *HearingHandler) CreateHearing(c *gin.Context) {
	var payload request.CreateHearingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHearingPayload.HTTPStatus, errInvalidHearingPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateHearing(c.Request.Context(), c.Param("id"), payload.ScheduledDate, payload.Location)
	if err != nil {
		appErr := mapHearingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromHearing(created)))
}

func (h *HearingHandler) ListByCase(c *gin.Context) {
	items, err := h.usecase.ListByCaseID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapHearingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromHearings(items)))
}

func (h *HearingHandler) GetHearing(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapHearingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromHearing(found)))
}

// UpdateResult records attendance/result free-form; there is no state
// machine gating hearings.
func (h *HearingHandler) UpdateResult(c *gin.Context) {
	var payload request.HearingResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHearingPayload.HTTPStatus, errInvalidHearingPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateResult(c.Request.Context(), c.Param("id"), payload.Attendance, payload.Result, payload.Notes, entities.HearingStatus(payload.Status))
	if err != nil {
		appErr := mapHearingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromHearing(updated)))
}

func mapHearingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHearingID), errors.Is(err, usecase.ErrInvalidHearingCaseID), errors.Is(err, usecase.ErrInvalidHearingDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHearingNotFound):
		return pkg.NewDomainErrorSimple("HEARING_NOT_FOUND", "Hearing not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
