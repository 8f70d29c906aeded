package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/controllers/cms/transaction_controller"
)

func SetupTransactionRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/transactions")

	transactions.GET("", transaction_controller.GetTransactions)
	transactions.POST("", transaction_controller.CreateTransaction)
}
