package customer_controller

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

// GetCustomerStats godoc
// @Summary Get customer statistics
// @Description Returns stats: total customers, new customers this month with growth, 90-day active customers, avg transaction value
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param tenantId query string true "Tenant ID"
// @Success 200 {object} models.ApiResponse{data=models.CustomerStats}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers/stats [get]
func GetCustomerStats(c *gin.Context) {
	log.Printf("[admin.customer-stats] start")

	tenantID, ok := middleware.RequireTenant(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// ================================
	// Current Month Stats
	// ================================
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Total customers (all time)
	var totalCustomers int64
	if err := config.LoyaltyGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("tenant_id = ? AND role = ? AND status = ?", tenantID, models.RoleCustomer, "active").
		Count(&totalCustomers).Error; err != nil {
		log.Printf("[admin.customer-stats] ERROR total customers count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count total customers"))
		return
	}

	// New customers this month
	var newCustomersThisMonth int64
	if err := config.LoyaltyGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("tenant_id = ? AND role = ? AND status = ? AND created_at >= ?", tenantID, models.RoleCustomer, "active", monthStart).
		Count(&newCustomersThisMonth).Error; err != nil {
		log.Printf("[admin.customer-stats] ERROR new customers count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count new customers"))
		return
	}

	// New customers last month
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	var newCustomersLastMonth int64
	if err := config.LoyaltyGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("tenant_id = ? AND role = ? AND status = ? AND created_at >= ? AND created_at < ?",
			tenantID, models.RoleCustomer, "active", lastMonthStart, monthStart).
		Count(&newCustomersLastMonth).Error; err != nil {
		log.Printf("[admin.customer-stats] ERROR last month customers count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count last month customers"))
		return
	}

	growthPercentage := analytics.Growth(float64(newCustomersThisMonth), float64(newCustomersLastMonth))

	// Active customers (no transaction in last 90 days counts as inactive)
	ninetyDaysAgo := now.AddDate(0, 0, -90)
	var activeCustomers int64
	if err := config.LoyaltyGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("tenant_id = ? AND role = ? AND status = ? AND EXISTS (SELECT 1 FROM transactions WHERE transactions.user_id = users.id AND transactions.timestamp >= ?)",
			tenantID, models.RoleCustomer, "active", ninetyDaysAgo).
		Count(&activeCustomers).Error; err != nil {
		log.Printf("[admin.customer-stats] ERROR active customers count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count active customers"))
		return
	}

	// Calculate active percentage
	activePercentage := 0.0
	if totalCustomers > 0 {
		activePercentage = (float64(activeCustomers) / float64(totalCustomers)) * 100
	}

	// Average transaction value
	var avgTransactionValue float64
	if err := config.LoyaltyGorm.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(AVG(amount), 0)").
		Scan(&avgTransactionValue).Error; err != nil {
		log.Printf("[admin.customer-stats] ERROR avg transaction value err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to calculate average transaction value"))
		return
	}

	// ================================
	// Build Response
	// ================================
	stats := models.CustomerStats{
		TotalCustomers:               int(totalCustomers),
		NewCustomersThisMonth:        int(newCustomersThisMonth),
		NewCustomersGrowthPercentage: growthPercentage,
		ActiveCustomers:              int(activeCustomers),
		ActiveCustomersPercentage:    activePercentage,
		AvgTransactionValue:          avgTransactionValue,
	}

	log.Printf("[admin.customer-stats] respond 200 total=%d new_this_month=%d active=%d avg_txn=%.2f",
		stats.TotalCustomers, stats.NewCustomersThisMonth, stats.ActiveCustomers, stats.AvgTransactionValue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer stats fetched successfully", stats))
}
