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

var errInvalidCommissionPayload = pkg.NewDomainErrorSimple("INVALID_COMMISSION_INPUT", "Invalid commission payload", http.StatusBadRequest)

// CommissionHandler serves expert commissions. Creation computes the
// evaluation banding server-side; clients only send the base amount.
type CommissionHandler struct {
	usecase usecase.ICommissionUseCase
}

func NewCommissionHandler(uc usecase.ICommissionUseCase) *CommissionHandler {
	return &CommissionHandler{usecase: uc}
}

func (h *CommissionHandler) CreateCommission(c *gin.Context) {
	var payload request.CreateCommissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommissionPayload.HTTPStatus, errInvalidCommissionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateCommission(c.Request.Context(), payload.CaseID, payload.ExpertID, payload.BaseAmount)
	if err != nil {
		appErr := mapCommissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromCommission(created)))
}

// ListCommissions filters by the expertId query param.
func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	expertID := c.Query("expertId")
	if expertID == "" {
		expertID = c.Query("expert_id")
	}

	items, err := h.usecase.ListByExpertID(c.Request.Context(), expertID)
	if err != nil {
		appErr := mapCommissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromCommissions(items)))
}

func (h *CommissionHandler) GetCommission(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCommissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromCommission(found)))
}

func (h *CommissionHandler) PayCommission(c *gin.Context) {
	paid, err := h.usecase.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCommissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromCommission(paid)))
}

func mapCommissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCommissionID), errors.Is(err, usecase.ErrInvalidCommissionInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommissionAlreadyPaid):
		return pkg.NewDomainErrorSimple("COMMISSION_ALREADY_PAID", "Commission already paid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommissionNotFound):
		return pkg.NewDomainErrorSimple("COMMISSION_NOT_FOUND", "Commission not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
