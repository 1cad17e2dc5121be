package routes

import (
	"peritaje_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCases = "/cases"

func addCaseRoutes(
	rg *gin.RouterGroup,
	caseHandler *handlers.CaseHandler,
	quoteHandler *handlers.QuoteHandler,
	workPlanHandler *handlers.WorkPlanHandler,
	deliverableHandler *handlers.DeliverableHandler,
	hearingHandler *handlers.HearingHandler,
	paymentHandler *handlers.PaymentHandler,
	evaluationHandler *handlers.EvaluationHandler,
) {
	cases := rg.Group(PathCases)
	{
		cases.GET("", caseHandler.ListCases)
		cases.POST("", caseHandler.CreateCase)
		cases.GET("/:id", caseHandler.GetCase)
		cases.PUT("/:id", caseHandler.UpdateCase)
		cases.DELETE("/:id", caseHandler.DeleteCase)
		cases.POST("/:id/assign", caseHandler.AssignRole)

		// Case-scoped sub-resources.
		cases.GET("/:id/quotes", quoteHandler.ListByCase)
		cases.GET("/:id/work-plan", workPlanHandler.GetByCase)
		cases.POST("/:id/work-plan", workPlanHandler.CreateWorkPlan)
		cases.GET("/:id/deliverables", deliverableHandler.ListByCase)
		cases.POST("/:id/deliverables", deliverableHandler.CreateDeliverable)
		cases.GET("/:id/hearings", hearingHandler.ListByCase)
		cases.POST("/:id/hearings", hearingHandler.CreateHearing)
		cases.GET("/:id/payments", paymentHandler.ListByCase)
		cases.POST("/:id/payments", paymentHandler.CreatePayment)
		cases.GET("/:id/evaluation", evaluationHandler.GetByCase)
		cases.POST("/:id/evaluation", evaluationHandler.CreateEvaluation)
	}
}
