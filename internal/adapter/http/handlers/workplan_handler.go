package handlers

import (
	"context"
	"errors"
	"net/http"

	request "peritaje_crm/internal/adapter/http/dto/request"
	response "peritaje_crm/internal/adapter/http/dto/response"
	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkPlanPayload = pkg.NewDomainErrorSimple("INVALID_WORK_PLAN_INPUT", "Invalid work plan payload", http.StatusBadRequest)

// WorkPlanHandler serves the case-scoped work plan resource and its
// committee workflow transitions.
type WorkPlanHandler struct {
	usecase usecase.IWorkPlanUseCase
}

func NewWorkPlanHandler(uc usecase.IWorkPlanUseCase) *WorkPlanHandler {
	return &WorkPlanHandler{usecase: uc}
}

// CreateWorkPlan creates the single work plan of a case; the case id comes
// from the path. A second create for the same case fails with 409.
func (h *WorkPlanHandler) CreateWorkPlan(c *gin.Context) {
	var payload request.CreateWorkPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPlanPayload.HTTPStatus, errInvalidWorkPlanPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateWorkPlan(c.Request.Context(), c.Param("id"), payload.Methodology, payload.Schedule)
	if err != nil {
		appErr := mapWorkPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromWorkPlan(created)))
}

func (h *WorkPlanHandler) GetByCase(c *gin.Context) {
	found, err := h.usecase.GetByCaseID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromWorkPlan(found)))
}

func (h *WorkPlanHandler) GetWorkPlan(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromWorkPlan(found)))
}

// UpdateWorkPlan edits methodology/schedule. The edit gate only admits
// plans in borrador or rechazado; editing a rejected plan bumps the version
// and resets it to borrador.
func (h *WorkPlanHandler) UpdateWorkPlan(c *gin.Context) {
	var payload request.UpdateWorkPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPlanPayload.HTTPStatus, errInvalidWorkPlanPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateContent(c.Request.Context(), c.Param("id"), payload.Methodology, payload.Schedule)
	if err != nil {
		appErr := mapWorkPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromWorkPlan(updated)))
}

func (h *WorkPlanHandler) SubmitWorkPlan(c *gin.Context) {
	h.transition(c, h.usecase.Submit)
}

func (h *WorkPlanHandler) ApproveWorkPlan(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

func (h *WorkPlanHandler) RejectWorkPlan(c *gin.Context) {
	var payload request.RejectWorkPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPlanPayload.HTTPStatus, errInvalidWorkPlanPayload.ToHTTPError())
		return
	}

	h.transition(c, func(ctx context.Context, id string) (entities.WorkPlan, error) {
		return h.usecase.Reject(ctx, id, payload.Comments)
	})
}

func (h *WorkPlanHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.WorkPlan, error),
) {
	updated, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromWorkPlan(updated)))
}

func mapWorkPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkPlanID), errors.Is(err, usecase.ErrInvalidWorkPlanCaseID), errors.Is(err, usecase.ErrInvalidWorkPlanContent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkPlanCommentsRequired):
		return pkg.NewDomainErrorSimple("COMMENTS_REQUIRED", "Rejection comments are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkPlanPrecondition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Work plan status does not allow this action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkPlanNotEditable):
		return pkg.NewDomainErrorSimple("NOT_EDITABLE", "Work plan can only be edited in borrador or rechazado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkPlanAlreadyExists):
		return pkg.NewDomainErrorSimple("WORK_PLAN_ALREADY_EXISTS", "Work plan already exists for this case", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkPlanNotFound):
		return pkg.NewDomainErrorSimple("WORK_PLAN_NOT_FOUND", "Work plan not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
