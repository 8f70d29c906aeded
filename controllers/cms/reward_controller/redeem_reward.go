package reward_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
	"gorm.io/gorm"
)

var (
	errRewardInactive     = errors.New("reward is not active")
	errRewardExpired      = errors.New("reward has expired")
	errRewardExhausted    = errors.New("reward usage limit reached")
	errInsufficientPoints = errors.New("insufficient points balance")
)

// RedeemReward godoc
// @Summary Redeem a reward for a customer
// @Description Checks the reward is active, unexpired and under its usage limit, and that the customer's accumulated balance covers the cost, then bumps the usage counter and records a redemption transaction
// @Tags Admin - Rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Param redemption body models.RedeemRewardRequest true "Customer redeeming the reward"
// @Success 200 {object} models.ApiResponse{data=models.Transaction}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/rewards/{id}/redeem [post]
func RedeemReward(c *gin.Context) {
	rewardID := c.Param("id")
	log.Printf("[admin.rewards-redeem] start id=%s", rewardID)

	var req models.RedeemRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.rewards-redeem] ERROR invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input"))
		return
	}

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var redemption models.Transaction
	err := config.LoyaltyGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reward models.Reward
		if err := tx.Where("id = ? AND tenant_id = ?", rewardID, tenantID).
			First(&reward).Error; err != nil {
			return err
		}

		if !reward.IsActive {
			return errRewardInactive
		}
		if reward.ExpiryDate != nil && reward.ExpiryDate.Before(time.Now()) {
			return errRewardExpired
		}
		if reward.UsageLimit != nil && reward.UsageCount >= *reward.UsageLimit {
			return errRewardExhausted
		}

		// Balance is the customer's accumulated earned-minus-redeemed sum,
		// the same figure the dashboard displays.
		var balance int64
		if err := tx.Model(&models.Transaction{}).
			Where("tenant_id = ? AND user_id = ?", tenantID, req.UserID).
			Select("COALESCE(SUM(points_earned - points_redeemed), 0)").
			Scan(&balance).Error; err != nil {
			return err
		}
		if balance < int64(reward.PointsCost) {
			return errInsufficientPoints
		}

		if err := tx.Model(&reward).
			UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error; err != nil {
			return err
		}

		redemption = models.Transaction{
			TenantID:       reward.TenantID,
			UserID:         uuid.MustParse(req.UserID),
			Amount:         0,
			PointsEarned:   0,
			PointsRedeemed: reward.PointsCost,
		}
		return tx.Create(&redemption).Error
	})

	switch {
	case err == nil:
		log.Printf("[admin.rewards-redeem] respond 200 reward=%s user=%s", rewardID, req.UserID)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Reward redeemed successfully", redemption))
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Reward not found"))
	case errors.Is(err, errRewardInactive),
		errors.Is(err, errRewardExpired),
		errors.Is(err, errRewardExhausted),
		errors.Is(err, errInsufficientPoints):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	default:
		log.Printf("[admin.rewards-redeem] ERROR redeem err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to redeem reward"))
	}
}
