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

var errInvalidEvaluationPayload = pkg.NewDomainErrorSimple("INVALID_EVALUATION_INPUT", "Invalid evaluation payload", http.StatusBadRequest)

type EvaluationHandler struct {
	usecase usecase.IEvaluationUseCase
}

func NewEvaluationHandler(uc usecase.IEvaluationUseCase) *EvaluationHandler {
	return &EvaluationHandler{usecase: uc}
}

func (h *EvaluationHandler) CreateEvaluation(c *gin.Context) {
	var payload request.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEvaluationPayload.HTTPStatus, errInvalidEvaluationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateEvaluation(c.Request.Context(), c.Param("id"), payload.ExpertID,
		payload.QualityScore, payload.TimelinessScore, payload.CommunicationScore, payload.Comments)
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.OK(response.FromEvaluation(created)))
}

func (h *EvaluationHandler) GetByCase(c *gin.Context) {
	found, err := h.usecase.GetByCaseID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromEvaluation(found)))
}

func mapEvaluationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEvaluationCaseID), errors.Is(err, usecase.ErrInvalidEvaluationScore):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEvaluationAlreadyExists):
		return pkg.NewDomainErrorSimple("EVALUATION_ALREADY_EXISTS", "Evaluation already exists for this case", http.StatusConflict)
	case errors.Is(err, usecase.ErrEvaluationNotFound):
		return pkg.NewDomainErrorSimple("EVALUATION_NOT_FOUND", "Evaluation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
