package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/controllers/cms/reward_controller"
)

func SetupRewardRoutes(rg *gin.RouterGroup) {
	rewards := rg.Group("/rewards")

	rewards.GET("", reward_controller.GetRewards)
	rewards.POST("", reward_controller.CreateReward)
	rewards.PUT("", reward_controller.UpdateReward)
	rewards.DELETE("/:id", reward_controller.DeleteReward)
	rewards.POST("/:id/redeem", reward_controller.RedeemReward)
}
