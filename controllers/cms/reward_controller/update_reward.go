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

var errInvalidExpiry = errors.New("invalid expiry date")

// UpdateReward godoc
// @Summary Update a reward
// @Description Update a reward's fields. Usage count is never writable here.
// @Tags Admin - Rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reward body models.UpdateRewardRequest true "Reward details with id"
// @Success 200 {object} models.ApiResponse{data=models.Reward}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/rewards [put]
func UpdateReward(c *gin.Context) {
	log.Printf("[admin.rewards-update] start")

	var req models.UpdateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.rewards-update] ERROR invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input"))
		return
	}

	if !middleware.RequireTenantMatch(c, req.TenantID) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Check the reward exists and belongs to this tenant
	var reward models.Reward
	if err := config.LoyaltyGorm.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", req.ID, req.TenantID).
		First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Reward not found"))
		} else {
			log.Printf("[admin.rewards-update] ERROR lookup reward err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update reward"))
		}
		return
	}

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid expiry_date"))
		return
	}

	reward.Name = req.Name
	reward.Description = req.Description
	reward.PointsCost = req.PointsCost
	reward.Category = req.Category
	if req.IsActive != nil {
		reward.IsActive = *req.IsActive
	}
	reward.UsageLimit = req.UsageLimit
	reward.ExpiryDate = expiry

	if err := config.LoyaltyGorm.WithContext(ctx).Save(&reward).Error; err != nil {
		log.Printf("[admin.rewards-update] ERROR save reward err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update reward"))
		return
	}

	log.Printf("[admin.rewards-update] respond 200 id=%s", reward.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reward updated successfully", reward))
}
