package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/controllers/cms/analytics_controller"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("", analytics_controller.GetAnalytics)
}
