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

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with email and password
// @Description Verifies credentials and returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	log.Printf("[auth.login] start")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.LoyaltyGorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if err != nil {
		log.Printf("[auth.login] ERROR user lookup err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if user.Status != "active" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account is not active"))
		return
	}

	if !services.GetAuthService().VerifyPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.Role, user.TenantID)
	if err != nil {
		log.Printf("[auth.login] ERROR generate token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Best effort; a failed audit row must not fail the login
	_ = utils.LogLoginEvent(c, user.ID)

	log.Printf("[auth.login] respond 200 user=%s role=%s", user.ID, user.Role)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}))
}
