package share

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"brainbox/pkg/brainbox/auth"
	"brainbox/pkg/brainbox/content"
	"brainbox/pkg/brainbox/models"
)

// linkBytes is the share token length in random bytes (16 bytes = 32 hex chars)
const linkBytes = 16

// Handler handles share-link requests
type Handler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHandler creates a new share handler
func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// ToggleShareRequest represents the request to enable or disable sharing
type ToggleShareRequest struct {
	Share *bool `json:"share" binding:"required"`
}

// SharedBrainResponse represents a public view of one user's content
type SharedBrainResponse struct {
	Username string                    `json:"username"`
	Content  []content.ContentResponse `json:"content"`
}

// generateShareLink mints a new unguessable share token
func generateShareLink() (string, error) {
	bytes := make([]byte, linkBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Toggle enables or disables the caller's public share link
// @Summary Toggle sharing
// @Description Enable or disable the public share link. The link is minted once and kept stable across toggles.
// @Tags share
// @Accept json
// @Produce json
// @Param request body ToggleShareRequest true "Desired share state"
// @Success 200 {object} map[string]string "Link or confirmation message"
// @Failure 403 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /brain/share [post]
func (h *Handler) Toggle(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req ToggleShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	enable := *req.Share

	var record models.Share
	err := h.db.Where("user_id = ?", userID).First(&record).Error
	if err == nil {
		// Existing record: flip the flag, never regenerate the link
		record.IsActive = enable
		if err := h.db.Save(&record).Error; err != nil {
			h.logger.Error("failed to update share", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update share"})
			return
		}
		if enable {
			c.JSON(http.StatusOK, gin.H{"link": record.ShareLink})
		} else {
			c.JSON(http.StatusOK, gin.H{"message": "Sharing disabled"})
		}
		return
	}

	if !enable {
		// Nothing to disable
		c.JSON(http.StatusOK, gin.H{"message": "Sharing is already disabled"})
		return
	}

	link, err := generateShareLink()
	if err != nil {
		h.logger.Error("failed to generate share link", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enable sharing"})
		return
	}

	record = models.Share{
		UserID:    userID,
		ShareLink: link,
		IsActive:  true,
	}
	if err := h.db.Create(&record).Error; err != nil {
		h.logger.Error("failed to create share", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enable sharing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": record.ShareLink})
}

// Fetch returns the shared content behind an active share link
// @Summary Fetch shared content
// @Description Public view of a user's content via their share link
// @Tags share
// @Produce json
// @Param shareLink path string true "Share link token"
// @Success 200 {object} SharedBrainResponse
// @Failure 404 {object} map[string]string "Share link not found"
// @Router /brain/{shareLink} [get]
func (h *Handler) Fetch(c *gin.Context) {
	link := c.Param("shareLink")

	// Disabled and nonexistent links answer identically, so the response
	// does not confirm that a link was ever valid
	var record models.Share
	if err := h.db.Where("share_link = ? AND is_active = ?", link, true).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Share link not found"})
		return
	}

	var owner models.User
	if err := h.db.First(&owner, record.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Share link not found"})
		return
	}

	var records []models.Content
	if err := h.db.Preload("Tags").Preload("User").Where("user_id = ?", owner.ID).Find(&records).Error; err != nil {
		h.logger.Error("failed to fetch shared content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shared content"})
		return
	}

	c.JSON(http.StatusOK, SharedBrainResponse{
		Username: owner.Username,
		Content:  content.ToResponses(records),
	})
}

// RegisterRoutes registers the authenticated share route
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/brain/share", h.Toggle)
}

// RegisterPublicRoutes registers the unauthenticated fetch route
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/brain/:shareLink", h.Fetch)
}
