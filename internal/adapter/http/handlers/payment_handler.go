package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "peritaje_crm/internal/adapter/http/dto/request"
	response "peritaje_crm/internal/adapter/http/dto/response"
	"peritaje_crm/internal/usecase"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler serves case payments and the optional Mercado Pago
// collection endpoint.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePayment(c.Request.Context(), c.Param("id"), payload.Amount, payload.Concept, payload.Method)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromPayment(created)))
}

func (h *PaymentHandler) ListByCase(c *gin.Context) {
	items, err := h.usecase.ListByCaseID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromPayments(items)))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromPayment(found)))
}

// CollectPayment forwards a pending payment to the gateway. The body may be
// empty; the use case enriches whatever payload arrives with the persisted
// amount and reference.
func (h *PaymentHandler) CollectPayment(c *gin.Context) {
	paymentID := c.Param("id")
	log.Printf("[payment][handler] collect start payment_id=%s", paymentID)

	var payload request.CollectPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload.GatewayPayload = json.RawMessage("{}")
	}
	if len(payload.GatewayPayload) == 0 {
		payload.GatewayPayload = json.RawMessage("{}")
	}

	collected, err := h.usecase.Collect(c.Request.Context(), paymentID, payload.GatewayPayload)
	if err != nil {
		log.Printf("[payment][handler] collect failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] collect success payment_id=%s provider_payment_id=%s", collected.ID, collected.ProviderPaymentID)

	c.JSON(http.StatusOK, pkg.OK(response.FromPayment(collected)))
}

func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	cancelled, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromPayment(cancelled)))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentCaseID), errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment is not pending", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
