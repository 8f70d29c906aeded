package reward_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
	"gorm.io/gorm"
)

// DeleteReward godoc
// @Summary Delete a reward
// @Description Removes a reward from the tenant's catalog
// @Tags Admin - Rewards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/rewards/{id} [delete]
func DeleteReward(c *gin.Context) {
	rewardID := c.Param("id")
	log.Printf("[admin.rewards-delete] start id=%s", rewardID)

	// Scope by the token's tenant; the path carries no tenant id
	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var reward models.Reward
	if err := config.LoyaltyGorm.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", rewardID, tenantID).
		First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Reward not found"))
		} else {
			log.Printf("[admin.rewards-delete] ERROR lookup reward err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete reward"))
		}
		return
	}

	if err := config.LoyaltyGorm.WithContext(ctx).Delete(&reward).Error; err != nil {
		log.Printf("[admin.rewards-delete] ERROR delete reward err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete reward"))
		return
	}

	log.Printf("[admin.rewards-delete] respond 200 id=%s", rewardID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reward deleted successfully", nil))
}
