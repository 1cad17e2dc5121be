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

var errInvalidDeliverablePayload = pkg.NewDomainErrorSimple("INVALID_DELIVERABLE_INPUT", "Invalid deliverable payload", http.StatusBadRequest)

// DeliverableHandler serves phase deliverables and their review decisions.
type DeliverableHandler struct {
	usecase usecase.IDeliverableUseCase
}

func NewDeliverableHandler(uc usecase.IDeliverableUseCase) *DeliverableHandler {
	return &DeliverableHandler{usecase: uc}
}

func (h *DeliverableHandler) CreateDeliverable(c *gin.Context) {
	var payload request.CreateDeliverableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliverablePayload.HTTPStatus, errInvalidDeliverablePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDeliverable(c.Request.Context(), c.Param("id"), payload.Phase, payload.PhaseNumber, payload.Title, payload.FileURL)
	if err != nil {
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromDeliverable(created)))
}

func (h *DeliverableHandler) ListByCase(c *gin.Context) {
	items, err := h.usecase.ListByCaseID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromDeliverables(items)))
}

func (h *DeliverableHandler) GetDeliverable(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromDeliverable(found)))
}

// ReviewDeliverable applies the aprobar/rechazar decision. Rejections need
// a reason before anything is written.
func (h *DeliverableHandler) ReviewDeliverable(c *gin.Context) {
	var payload request.ReviewDeliverableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliverablePayload.HTTPStatus, errInvalidDeliverablePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Review(c.Request.Context(), c.Param("id"), usecase.ReviewDecision(payload.Decision), payload.Reason)
	if err != nil {
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromDeliverable(updated)))
}

func mapDeliverableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeliverableID), errors.Is(err, usecase.ErrInvalidDeliverableCaseID), errors.Is(err, usecase.ErrInvalidDeliverableInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReviewDecision):
		return pkg.NewDomainErrorSimple("INVALID_DECISION", "Decision must be aprobar or rechazar", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeliverableReasonRequired):
		return pkg.NewDomainErrorSimple("REASON_REQUIRED", "Rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeliverablePrecondition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Deliverable status does not allow review", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeliverableNotFound):
		return pkg.NewDomainErrorSimple("DELIVERABLE_NOT_FOUND", "Deliverable not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
