package reward_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
)

// CreateReward godoc
// @Summary Create a new reward
// @Description Create a reward in the tenant's catalog. Usage count always starts at zero.
// @Tags Admin - Rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reward body models.RewardRequest true "Reward details"
// @Success 201 {object} models.ApiResponse{data=models.Reward}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/rewards [post]
func CreateReward(c *gin.Context) {
	log.Printf("[admin.rewards-create] start")

	var req models.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.rewards-create] ERROR invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input"))
		return
	}

	if !middleware.RequireTenantMatch(c, req.TenantID) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid expiry_date"))
		return
	}

	reward := models.Reward{
		TenantID:    uuid.MustParse(req.TenantID),
		Name:        req.Name,
		Description: req.Description,
		PointsCost:  req.PointsCost,
		Category:    req.Category,
		IsActive:    isActive,
		UsageLimit:  req.UsageLimit,
		UsageCount:  0,
		ExpiryDate:  expiry,
	}

	if err := config.LoyaltyGorm.WithContext(ctx).Create(&reward).Error; err != nil {
		log.Printf("[admin.rewards-create] ERROR create reward err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create reward"))
		return
	}

	log.Printf("[admin.rewards-create] respond 201 id=%s name=%q", reward.ID, reward.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reward created successfully", reward))
}

// parseExpiry accepts RFC 3339 or plain date strings from the dashboard form.
func parseExpiry(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, errInvalidExpiry
}
