package routes

import (
	"kaenpro_motors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBilling = "/billing"
	PathAuth    = "/auth"
)

func addBillingRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.GET("/overdue", billingHandler.ListOverdue)
		billing.GET("/summary", billingHandler.Summary)
		billing.GET("/orders/:id/message", billingHandler.Message)
		billing.POST("/orders/:id/contacts", billingHandler.RecordContact)
		billing.POST("/orders/:id/pay", billingHandler.MarkPaid)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}
