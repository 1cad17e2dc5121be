package handlers

import (
	"net/http"
	"time"

	"peritaje_crm/internal/usecase"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportRange = pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "from/to must be RFC3339 or YYYY-MM-DD dates", http.StatusBadRequest)

// ReportHandler serves the three read-only aggregation endpoints. Date
// filters arrive as ?from=&to= query params.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) CasesReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		c.JSON(errInvalidReportRange.HTTPStatus, errInvalidReportRange.ToHTTPError())
		return
	}

	rep, err := h.usecase.Cases(c.Request.Context(), from, to)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(rep))
}

func (h *ReportHandler) RevenueReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		c.JSON(errInvalidReportRange.HTTPStatus, errInvalidReportRange.ToHTTPError())
		return
	}

	rep, err := h.usecase.Revenue(c.Request.Context(), from, to)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(rep))
}

func (h *ReportHandler) ExpertsPerformanceReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		c.JSON(errInvalidReportRange.HTTPStatus, errInvalidReportRange.ToHTTPError())
		return
	}

	rows, err := h.usecase.ExpertsPerformance(c.Request.Context(), from, to)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.OK(rows))
}

func dateRange(c *gin.Context) (from, to *time.Time, ok bool) {
	from, ok = parseDateParam(c.Query("from"))
	if !ok {
		return nil, nil, false
	}
	to, ok = parseDateParam(c.Query("to"))
	if !ok {
		return nil, nil, false
	}
	return from, to, true
}

func parseDateParam(v string) (*time.Time, bool) {
	if v == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t, true
	}
	return nil, false
}
