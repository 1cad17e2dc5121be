package handlers

import (
	"errors"
	"log"
	"net/http"

	request "peritaje_crm/internal/adapter/http/dto/request"
	response "peritaje_crm/internal/adapter/http/dto/response"
	"peritaje_crm/internal/adapter/http/middleware"
	"peritaje_crm/internal/usecase"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

const (
	adminCookieName = "admin-token"
	crmCookieName   = "crm-token"
	// Must stay aligned with the token TTL used at issue time.
	authCookieMaxAge = 12 * 60 * 60
)

var errInvalidAdminPayload = pkg.NewDomainErrorSimple("INVALID_ADMIN_INPUT", "Invalid payload", http.StatusBadRequest)

// AdminHandler serves config bootstrap, both login flows and password
// changes for the admin portal and the CRM.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// InitConfig creates the singleton admin config. A second call fails with
// 400 regardless of the passwords sent.
func (h *AdminHandler) InitConfig(c *gin.Context) {
	var payload request.InitConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	if err := h.usecase.InitConfig(c.Request.Context(), payload.MasterPassword, payload.SecondaryPassword); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] config initialized")

	c.JSON(http.StatusCreated, pkg.OK(gin.H{"initialized": true}))
}

func (h *AdminHandler) AdminLogin(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	token, err := h.usecase.AdminLogin(c.Request.Context(), payload.Password)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.SetCookie(adminCookieName, token, authCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, pkg.OK(response.LoginResponse{Token: token}))
}

func (h *AdminHandler) CRMLogin(c *gin.Context) {
	var payload request.CRMLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	token, user, err := h.usecase.CRMLogin(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	u := response.FromUser(user)
	c.SetCookie(crmCookieName, token, authCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, pkg.OK(response.LoginResponse{Token: token, User: &u}))
}

func (h *AdminHandler) ChangeAdminPassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ChangeAdminPassword(c.Request.Context(), payload.CurrentPassword, payload.NewPassword); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] master password changed")

	c.JSON(http.StatusOK, pkg.OK(gin.H{"changed": true}))
}

func (h *AdminHandler) ChangeCRMPassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	userID := middleware.CallerID(c)
	if err := h.usecase.ChangeCRMPassword(c.Request.Context(), userID, payload.CurrentPassword, payload.NewPassword); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(gin.H{"changed": true}))
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAlreadyInitialized):
		return pkg.NewDomainErrorSimple("ALREADY_INITIALIZED", "Admin config already initialized", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotInitialized):
		return pkg.NewDomainErrorSimple("NOT_INITIALIZED", "Admin config not initialized", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAdminInput), errors.Is(err, usecase.ErrInvalidLoginInput), errors.Is(err, usecase.ErrPasswordTooShort):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWrongCredentials):
		return pkg.NewDomainErrorSimple("WRONG_CREDENTIALS", "Wrong credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
