package program_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	program_cache "github.com/nyashaushe/loyaltAI/cache"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
	"gorm.io/gorm"
)

// GetProgramRules godoc
// @Summary Get program rules for a tenant
// @Description Returns the tenant's point-earning rules, creating the defaults on first read
// @Tags Admin - Program Rules
// @Produce json
// @Security BearerAuth
// @Param tenantId query string true "Tenant ID"
// @Success 200 {object} models.ApiResponse{data=models.Program}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/program-rules [get]
func GetProgramRules(c *gin.Context) {
	log.Printf("[admin.program-rules] start")

	tenantID, ok := middleware.RequireTenant(c)
	if !ok {
		return
	}

	if program, ok := program_cache.Get(tenantID); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Program rules retrieved successfully", program))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var program models.Program
	err := config.LoyaltyGorm.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&program).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Create default program if it doesn't exist
		program = models.DefaultProgram(uuid.MustParse(tenantID))
		if err := config.LoyaltyGorm.WithContext(ctx).Create(&program).Error; err != nil {
			log.Printf("[admin.program-rules] ERROR create default program err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load program rules"))
			return
		}
		log.Printf("[admin.program-rules] created default program tenant=%s", tenantID)
	} else if err != nil {
		log.Printf("[admin.program-rules] ERROR query program err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load program rules"))
		return
	}

	program_cache.Set(tenantID, program)

	log.Printf("[admin.program-rules] respond 200 tenant=%s points_per_dollar=%.1f", tenantID, program.PointsPerDollar)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Program rules retrieved successfully", program))
}
