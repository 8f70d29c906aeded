package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/controllers/cms/customer_controller"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")

	customers.GET("", customer_controller.GetCustomers)
	customers.GET("/stats", customer_controller.GetCustomerStats)
}
