package transaction_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
)

// GetTransactions godoc
// @Summary List transactions for a tenant
// @Description Returns the tenant's transactions, newest first, paginated
// @Tags Admin - Transactions
// @Produce json
// @Security BearerAuth
// @Param tenantId query string true "Tenant ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} models.ApiResponse{data=[]models.Transaction}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/transactions [get]
func GetTransactions(c *gin.Context) {
	log.Printf("[admin.transactions-list] start")

	tenantID, ok := middleware.RequireTenant(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.LoyaltyGorm.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error; err != nil {
		log.Printf("[admin.transactions-list] ERROR count transactions err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load transactions"))
		return
	}

	var transactions []models.Transaction
	if err := config.LoyaltyGorm.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error; err != nil {
		log.Printf("[admin.transactions-list] ERROR query transactions err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load transactions"))
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

	log.Printf("[admin.transactions-list] respond 200 transactions=%d total=%d", len(transactions), total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Transactions retrieved successfully", transactions, meta))
}
