package handlers

import (
	"errors"
	"net/http"

	response "peritaje_crm/internal/adapter/http/dto/response"
	"peritaje_crm/internal/adapter/http/middleware"
	"peritaje_crm/internal/usecase"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the caller's notification inbox. The acting
// user id comes from the auth middleware (token subject, or x-user-id when
// the admin acts on behalf of a user).
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	items, err := h.usecase.ListByUserID(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromNotifications(items)))
}

// MarkRead flips one notification. Owners only; the admin sentinel caller
// bypasses the ownership check.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	updated, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"), middleware.CallerID(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromNotification(updated)))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	marked, err := h.usecase.MarkAllRead(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.MarkAllReadResponse{Marked: marked}))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID), errors.Is(err, usecase.ErrInvalidNotifUserID), errors.Is(err, usecase.ErrInvalidNotifContent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationOwnership):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Notification belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
