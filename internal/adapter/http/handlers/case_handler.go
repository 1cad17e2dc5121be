package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "peritaje_crm/internal/adapter/http/dto/request"
	response "peritaje_crm/internal/adapter/http/dto/response"
	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCasePayload = pkg.NewDomainErrorSimple("INVALID_CASE_INPUT", "Invalid case payload", http.StatusBadRequest)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CaseHandler serves the /cases resource and the assignment endpoint.
type CaseHandler struct {
	usecase usecase.ICaseUseCase
}

func NewCaseHandler(uc usecase.ICaseUseCase) *CaseHandler {
	return &CaseHandler{usecase: uc}
}

func (h *CaseHandler) CreateCase(c *gin.Context) {
	var payload request.CreateCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateCase(c.Request.Context(), payload.Title, payload.ClientName, payload.Description)
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromCase(created)))
}

// ListCases returns the full scan paginated in memory. page and limit come
// from query params; meta reports totals.
func (h *CaseHandler) ListCases(c *gin.Context) {
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page, limit := pageParams(c)
	total := len(all)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, pkg.OKPaged(response.FromCases(all[start:end]), total, page, limit))
}

func (h *CaseHandler) GetCase(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromCase(found)))
}

func (h *CaseHandler) UpdateCase(c *gin.Context) {
	var payload request.UpdateCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateCase(c.Request.Context(), entities.Case{
		ID:           c.Param("id"),
		Title:        payload.Title,
		ClientName:   payload.ClientName,
		Description:  payload.Description,
		Status:       entities.CaseStatus(payload.Status),
		CurrentPhase: payload.CurrentPhase,
	})
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromCase(updated)))
}

// DeleteCase soft-deactivates; the document stays queryable.
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	deactivated, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromCase(deactivated)))
}

func (h *CaseHandler) AssignRole(c *gin.Context) {
	var payload request.AssignRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	userID := payload.ResolveUserID()
	if userID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.AssignRole(c.Request.Context(), c.Param("id"), entities.AssignmentRole(payload.Role), userID)
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromCase(updated)))
}

func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func mapCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidCaseInput), errors.Is(err, usecase.ErrInvalidAssignRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssigneeNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Assignee user not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssigneeNotActive):
		return pkg.NewDomainErrorSimple("USER_NOT_ACTIVE", "Assignee user is not active", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
