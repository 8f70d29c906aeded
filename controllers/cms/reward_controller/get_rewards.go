package reward_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
)

// GetRewards godoc
// @Summary List rewards for a tenant
// @Description Returns the tenant's reward catalog, newest first
// @Tags Admin - Rewards
// @Produce json
// @Security BearerAuth
// @Param tenantId query string true "Tenant ID"
// @Success 200 {object} models.ApiResponse{data=[]models.Reward}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/rewards [get]
func GetRewards(c *gin.Context) {
	log.Printf("[admin.rewards-list] start")

	tenantID, ok := middleware.RequireTenant(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var rewards []models.Reward
	if err := config.LoyaltyGorm.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&rewards).Error; err != nil {
		log.Printf("[admin.rewards-list] ERROR query rewards err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load rewards"))
		return
	}

	log.Printf("[admin.rewards-list] respond 200 rewards=%d", len(rewards))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Rewards retrieved successfully", rewards))
}
