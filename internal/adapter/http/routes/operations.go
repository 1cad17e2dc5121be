package routes

import (
	"peritaje_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHearings      = "/hearings"
	PathPayments      = "/payments"
	PathCommissions   = "/commissions"
	PathExperts       = "/experts"
	PathNotifications = "/notifications"
	PathReports       = "/reports"
	PathSettings      = "/settings"
)

func addOperationRoutes(
	rg *gin.RouterGroup,
	hearingHandler *handlers.HearingHandler,
	paymentHandler *handlers.PaymentHandler,
	commissionHandler *handlers.CommissionHandler,
	expertHandler *handlers.ExpertHandler,
	notificationHandler *handlers.NotificationHandler,
	reportHandler *handlers.ReportHandler,
	settingHandler *handlers.SettingHandler,
) {
	hearings := rg.Group(PathHearings)
	{
		hearings.GET("/:id", hearingHandler.GetHearing)
		hearings.PUT("/:id/result", hearingHandler.UpdateResult)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("/:id/collect", paymentHandler.CollectPayment)
		payments.POST("/:id/cancel", paymentHandler.CancelPayment)
	}

	commissions := rg.Group(PathCommissions)
	{
		commissions.GET("", commissionHandler.ListCommissions)
		commissions.POST("", commissionHandler.CreateCommission)
		commissions.GET("/:id", commissionHandler.GetCommission)
		commissions.PUT("/:id/pay", commissionHandler.PayCommission)
	}

	experts := rg.Group(PathExperts)
	{
		experts.GET("", expertHandler.ListUsers)
		experts.POST("", expertHandler.CreateUser)
		experts.GET("/:id", expertHandler.GetUser)
		experts.PUT("/:id/availability", expertHandler.SetAvailability)
		experts.POST("/:id/validate", expertHandler.ValidateUser)
		experts.DELETE("/:id", expertHandler.DeleteUser)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListMine)
		notifications.PUT("/:id/read", notificationHandler.MarkRead)
		notifications.PUT("/mark-all-read", notificationHandler.MarkAllRead)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/cases", reportHandler.CasesReport)
		reports.GET("/revenue", reportHandler.RevenueReport)
		reports.GET("/experts-performance", reportHandler.ExpertsPerformanceReport)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingHandler.ListSettings)
		settings.GET("/:key", settingHandler.GetSetting)
		settings.PUT("/:key", settingHandler.PutSetting)
	}
}
