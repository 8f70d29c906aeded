package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/nyashaushe/loyaltAI/services"
	"github.com/nyashaushe/loyaltAI/utils"
	"gorm.io/gorm"
)

// defaultTenantSlug is used when a signup arrives without a tenant slug
// (the public signup form does not expose one).
const defaultTenantSlug = "coffee-shop-1"

// SignupRequest is the public signup payload.
type SignupRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,min=6,eqfield=Password"`
	Name            string `json:"name" binding:"required,min=1"`
	TenantSlug      string `json:"tenantSlug"`
}

// AuthResponse bundles the token with the public user payload.
type AuthResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

// Signup godoc
// @Summary Create a customer account
// @Description Registers a customer under a tenant (created on demand from the slug) and returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body SignupRequest true "Signup details"
// @Success 201 {object} models.ApiResponse{data=AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/signup [post]
func Signup(c *gin.Context) {
	log.Printf("[auth.signup] start")

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth.signup] ERROR invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input"))
		return
	}

	tenantSlug := req.TenantSlug
	if tenantSlug == "" {
		tenantSlug = defaultTenantSlug
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject duplicate emails up front
	var existing models.User
	err := config.LoyaltyGorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already in use"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[auth.signup] ERROR email lookup err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Find or create tenant
	var tenant models.Tenant
	err = config.LoyaltyGorm.WithContext(ctx).
		Where("slug = ?", tenantSlug).
		First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tenant = models.Tenant{Slug: tenantSlug, Name: tenantSlug}
		if err := config.LoyaltyGorm.WithContext(ctx).Create(&tenant).Error; err != nil {
			log.Printf("[auth.signup] ERROR create tenant err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}
		log.Printf("[auth.signup] created tenant slug=%s", tenantSlug)
	} else if err != nil {
		log.Printf("[auth.signup] ERROR tenant lookup err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	passwordHash, err := services.GetAuthService().HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.signup] ERROR hash password err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	user := models.User{
		TenantID:     tenant.ID,
		Email:        req.Email,
		Name:         req.Name,
		Role:         models.RoleCustomer,
		PasswordHash: passwordHash,
	}
	if err := config.LoyaltyGorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.signup] ERROR create user err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.Role, user.TenantID)
	if err != nil {
		log.Printf("[auth.signup] ERROR generate token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Best effort; a failed audit row must not fail the signup
	_ = utils.LogLoginEvent(c, user.ID)

	log.Printf("[auth.signup] respond 201 user=%s tenant=%s", user.ID, tenant.Slug)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}))
}
