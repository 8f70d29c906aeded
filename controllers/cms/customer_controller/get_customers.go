package customer_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
)

// GetCustomers godoc
// @Summary List customers for a tenant
// @Description Returns customers with spend, point balance and visit roll-ups, newest first, paginated
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param tenantId query string true "Tenant ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} models.ApiResponse{data=[]models.CustomerListRow}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers [get]
func GetCustomers(c *gin.Context) {
	log.Printf("[admin.customers-list] start")

	tenantID, ok := middleware.RequireTenant(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.LoyaltyGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("tenant_id = ? AND role = ?", tenantID, models.RoleCustomer).
		Count(&total).Error; err != nil {
		log.Printf("[admin.customers-list] ERROR count customers err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load customers"))
		return
	}

	var rows []models.CustomerListRow
	if err := config.LoyaltyGorm.WithContext(ctx).
		Raw(`
			SELECT
				u.id::text AS id,
				u.name,
				u.email,
				u.status,
				COALESCE(SUM(t.amount), 0)::float8 AS total_spent,
				COALESCE(SUM(t.points_earned - t.points_redeemed), 0)::int AS points,
				COUNT(t.id)::int AS visit_count,
				u.created_at AS join_date
			FROM users u
			LEFT JOIN transactions t ON t.user_id = u.id
			WHERE u.tenant_id = ? AND u.role = ?
			GROUP BY u.id, u.name, u.email, u.status, u.created_at
			ORDER BY u.created_at DESC
			LIMIT ? OFFSET ?
		`, tenantID, models.RoleCustomer, limit, offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.customers-list] ERROR query customers err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load customers"))
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.customers-list] respond 200 customers=%d total=%d", len(rows), total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers retrieved successfully", rows, meta))
}
