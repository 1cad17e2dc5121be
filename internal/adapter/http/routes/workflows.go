package routes

import (
	"peritaje_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes       = "/quotes"
	PathWorkPlans    = "/work-plans"
	PathDeliverables = "/deliverables"
)

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	workPlanHandler *handlers.WorkPlanHandler,
	deliverableHandler *handlers.DeliverableHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/send", quoteHandler.SendQuote)
		quotes.POST("/:id/approve", quoteHandler.ApproveQuote)
		quotes.POST("/:id/reject", quoteHandler.RejectQuote)
	}

	workPlans := rg.Group(PathWorkPlans)
	{
		workPlans.GET("/:id", workPlanHandler.GetWorkPlan)
		workPlans.PUT("/:id", workPlanHandler.UpdateWorkPlan)
		workPlans.POST("/:id/submit", workPlanHandler.SubmitWorkPlan)
		workPlans.POST("/:id/approve", workPlanHandler.ApproveWorkPlan)
		workPlans.POST("/:id/reject", workPlanHandler.RejectWorkPlan)
	}

	deliverables := rg.Group(PathDeliverables)
	{
		deliverables.GET("/:id", deliverableHandler.GetDeliverable)
		deliverables.PUT("/:id/review", deliverableHandler.ReviewDeliverable)
	}
}
