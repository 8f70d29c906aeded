package transaction_controller

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	program_cache "github.com/nyashaushe/loyaltAI/cache"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/models"
	"gorm.io/gorm"
)

// CreateTransaction godoc
// @Summary Record a purchase transaction
// @Description Records a purchase for a customer. Points earned are computed server-side from the tenant's program rules (amount × points per dollar, rounded).
// @Tags Admin - Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body models.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.ApiResponse{data=models.Transaction}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/transactions [post]
func CreateTransaction(c *gin.Context) {
	log.Printf("[admin.transactions-create] start")

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.transactions-create] ERROR invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input"))
		return
	}

	if !middleware.RequireTenantMatch(c, req.TenantID) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Customer must exist under this tenant
	var customer models.User
	if err := config.LoyaltyGorm.WithContext(ctx).
		Where("id = ? AND tenant_id = ? AND role = ?", req.UserID, req.TenantID, models.RoleCustomer).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		} else {
			log.Printf("[admin.transactions-create] ERROR lookup customer err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create transaction"))
		}
		return
	}

	program, err := loadProgramRules(c, req.TenantID)
	if err != nil {
		log.Printf("[admin.transactions-create] ERROR load program rules err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create transaction"))
		return
	}

	pointsEarned := int(math.Round(req.Amount * program.PointsPerDollar))

	transaction := models.Transaction{
		TenantID:      uuid.MustParse(req.TenantID),
		UserID:        customer.ID,
		Amount:        req.Amount,
		PointsEarned:  pointsEarned,
		Location:      req.Location,
		PaymentMethod: req.PaymentMethod,
	}

	if err := config.LoyaltyGorm.WithContext(ctx).Create(&transaction).Error; err != nil {
		log.Printf("[admin.transactions-create] ERROR create transaction err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create transaction"))
		return
	}

	log.Printf("[admin.transactions-create] respond 201 id=%s amount=%.2f points=%d",
		transaction.ID, transaction.Amount, transaction.PointsEarned)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Transaction recorded successfully", transaction))
}

// loadProgramRules reads the tenant's program through the TTL cache,
// falling back to the stored (or default) rules on a miss.
func loadProgramRules(c *gin.Context, tenantID string) (models.Program, error) {
	if program, ok := program_cache.Get(tenantID); ok {
		return program, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var program models.Program
	err := config.LoyaltyGorm.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&program).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		program = models.DefaultProgram(uuid.MustParse(tenantID))
		if err := config.LoyaltyGorm.WithContext(ctx).Create(&program).Error; err != nil {
			return models.Program{}, err
		}
	} else if err != nil {
		return models.Program{}, err
	}

	program_cache.Set(tenantID, program)
	return program, nil
}
