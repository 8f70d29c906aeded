package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/controllers/cms/program_controller"
)

func SetupProgramRoutes(rg *gin.RouterGroup) {
	program := rg.Group("/program-rules")

	program.GET("", program_controller.GetProgramRules)
	program.PUT("", program_controller.UpdateProgramRules)
}
