package routes

import (
	"peritaje_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addAuthRoutes registers the endpoints reachable without a token: config
// bootstrap and the two login flows.
func addAuthRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	rg.POST("/admin/init", adminHandler.InitConfig)
	rg.POST("/admin/login", adminHandler.AdminLogin)
	rg.POST("/crm/login", adminHandler.CRMLogin)
}

// addAdminRoutes registers the authenticated password-change endpoints.
func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	rg.POST("/admin/change-password", adminHandler.ChangeAdminPassword)
	rg.POST("/crm/change-password", adminHandler.ChangeCRMPassword)
}
