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

var errInvalidExpertPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

// ExpertHandler manages CRM users (experts, analysts, commercials).
type ExpertHandler struct {
	usecase usecase.IExpertUseCase
}

func NewExpertHandler(uc usecase.IExpertUseCase) *ExpertHandler {
	return &ExpertHandler{usecase: uc}
}

func (h *ExpertHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpertPayload.HTTPStatus, errInvalidExpertPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateUser(c.Request.Context(), payload.Email, payload.Name, entities.Role(payload.Role), payload.Password)
	if err != nil {
		appErr := mapExpertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromUser(created)))
}

func (h *ExpertHandler) ListUsers(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapExpertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromUsers(items)))
}

func (h *ExpertHandler) GetUser(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapExpertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromUser(found)))
}

func (h *ExpertHandler) SetAvailability(c *gin.Context) {
	var payload request.AvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpertPayload.HTTPStatus, errInvalidExpertPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetAvailability(c.Request.Context(), c.Param("id"), entities.Availability(payload.Availability))
	if err != nil {
		appErr := mapExpertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromUser(updated)))
}

func (h *ExpertHandler) ValidateUser(c *gin.Context) {
	updated, err := h.usecase.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapExpertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromUser(updated)))
}

// DeleteUser soft-deactivates; the account is kept for history.
func (h *ExpertHandler) DeleteUser(c *gin.Context) {
	updated, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapExpertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromUser(updated)))
}

func mapExpertError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidUserInput),
		errors.Is(err, usecase.ErrInvalidRole), errors.Is(err, usecase.ErrInvalidAvailability),
		errors.Is(err, usecase.ErrPasswordTooShort):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
