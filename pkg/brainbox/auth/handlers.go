package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"brainbox/pkg/brainbox/models"
)

// Handler handles account requests
type Handler struct {
	db     *gorm.DB
	tokens *TokenManager
	logger *zap.Logger
}

// NewHandler creates a new auth handler
func NewHandler(db *gorm.DB, tokens *TokenManager, logger *zap.Logger) *Handler {
	return &Handler{db: db, tokens: tokens, logger: logger}
}

// SigninRequest represents the signin request body
type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup handles user registration
// @Summary Sign up
// @Description Create a new account. The password is stored as a salted hash.
// @Tags account
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup details"
// @Success 200 {object} map[string]string "User created"
// @Failure 403 {object} map[string]string "Username already exists"
// @Failure 411 {object} map[string]string "Validation error"
// @Router /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	req, ok := GetSignupRequest(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup payload missing"})
		return
	}

	// Check if username already exists
	var existing models.User
	if err := h.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "User already exists"})
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := h.db.Create(&user).Error; err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	// No auto-login: the client signs in separately
	c.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
}

// Signin handles user login
// @Summary Sign in
// @Description Authenticate with username and password to receive a bearer token
// @Tags account
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Credentials"
// @Success 200 {object} map[string]string "Token"
// @Failure 403 {object} map[string]string "Wrong credentials"
// @Router /signin [post]
func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Wrong credentials"})
		return
	}

	// The response never distinguishes an unknown username from a bad
	// password, to avoid username enumeration.
	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Wrong credentials"})
		return
	}

	if !CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Wrong credentials"})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RegisterRoutes registers account routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", ValidateSignup(), h.Signup)
	rg.POST("/signin", h.Signin)
}
