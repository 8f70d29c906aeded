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

// UpdateProgramRules godoc
// @Summary Update program rules
// @Description Upserts the tenant's point-earning rules and invalidates the rules cache
// @Tags Admin - Program Rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rules body models.ProgramRulesRequest true "Program rules"
// @Success 200 {object} models.ApiResponse{data=models.Program}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/program-rules [put]
func UpdateProgramRules(c *gin.Context) {
	log.Printf("[admin.program-rules-update] start")

	var req models.ProgramRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.program-rules-update] ERROR invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input"))
		return
	}

	if !middleware.RequireTenantMatch(c, req.TenantID) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.Program
	findErr := config.LoyaltyGorm.WithContext(ctx).
		Where("tenant_id = ?", req.TenantID).
		First(&existing).Error

	program, err := programForUpdate(existing, findErr, req.TenantID)
	if err != nil {
		log.Printf("[admin.program-rules-update] ERROR query program err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update program rules"))
		return
	}
	applyProgramRules(&program, req)

	if err := config.LoyaltyGorm.WithContext(ctx).Save(&program).Error; err != nil {
		log.Printf("[admin.program-rules-update] ERROR save program err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update program rules"))
		return
	}

	program_cache.Invalidate(req.TenantID)

	log.Printf("[admin.program-rules-update] respond 200 tenant=%s points_per_dollar=%.1f",
		req.TenantID, program.PointsPerDollar)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Program rules updated successfully", program))
}

// programForUpdate picks the row the request applies onto: the stored
// program when one exists, otherwise the tenant defaults — so a first write
// through PUT produces the same row a first read would have created.
func programForUpdate(existing models.Program, findErr error, tenantID string) (models.Program, error) {
	if errors.Is(findErr, gorm.ErrRecordNotFound) {
		return models.DefaultProgram(uuid.MustParse(tenantID)), nil
	}
	if findErr != nil {
		return models.Program{}, findErr
	}
	return existing, nil
}

// applyProgramRules overlays the request's earn rules. Name and identity
// fields are never client-writable.
func applyProgramRules(program *models.Program, req models.ProgramRulesRequest) {
	program.PointsPerDollar = req.PointsPerDollar
	program.BirthdayBonus = req.BirthdayBonus
	program.CheckInBonusPoints = req.CheckInBonusPoints
	program.CheckInRadiusMeters = req.CheckInRadiusMeters
}
