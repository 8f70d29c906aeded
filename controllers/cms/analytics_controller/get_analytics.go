package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/nyashaushe/loyaltAI/services/analytics"
)

// GetAnalytics godoc
// @Summary Get the analytics dashboard snapshot
// @Description Returns totals, growth percentages, top customers, the six-month revenue series, customer segments and generated insights for the tenant
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param tenantId query string true "Tenant ID"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsSnapshot}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics [get]
func GetAnalytics(c *gin.Context) {
	log.Printf("[admin.analytics] start")

	tenantID, ok := middleware.RequireTenant(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// ================================
	// Fetch the tenant's collections
	// ================================
	var customers []models.User
	if err := config.LoyaltyGorm.WithContext(ctx).
		Where("tenant_id = ? AND role = ?", tenantID, models.RoleCustomer).
		Find(&customers).Error; err != nil {
		log.Printf("[admin.analytics] ERROR fetch customers err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics"))
		return
	}

	var transactions []models.Transaction
	if err := config.LoyaltyGorm.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("timestamp DESC").
		Find(&transactions).Error; err != nil {
		log.Printf("[admin.analytics] ERROR fetch transactions err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics"))
		return
	}

	var rewards []models.Reward
	if err := config.LoyaltyGorm.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&rewards).Error; err != nil {
		log.Printf("[admin.analytics] ERROR fetch rewards err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics"))
		return
	}

	// ================================
	// Run the aggregation engine
	// ================================
	snapshot := analytics.ComputeSnapshot(customers, transactions, rewards, time.Now())

	log.Printf("[admin.analytics] respond 200 customers=%d transactions=%d revenue=%.2f insights=%d",
		snapshot.TotalCustomers, snapshot.TotalTransactions, snapshot.TotalRevenue, len(snapshot.Insights))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics retrieved successfully", snapshot))
}
