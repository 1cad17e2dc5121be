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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler serves the /quotes resource and its workflow transitions.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), payload.CaseID, payload.Amount, payload.Description)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromQuote(created)))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromQuote(found)))
}

func (h *QuoteHandler) ListByCase(c *gin.Context) {
	quotes, err := h.usecase.ListByCaseID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromQuotes(quotes)))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

// RejectQuote requires a reason in the body; rejecting without one is a 400
// before any state change.
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	h.transition(c, func(ctx context.Context, id string) (entities.Quote, error) {
		return h.usecase.Reject(ctx, id, payload.Reason)
	})
}

func (h *QuoteHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.Quote, error),
) {
	updated, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromQuote(updated)))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteCaseID), errors.Is(err, usecase.ErrInvalidQuoteAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteReasonRequired):
		return pkg.NewDomainErrorSimple("REASON_REQUIRED", "Rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotePrecondition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Quote status does not allow this action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
