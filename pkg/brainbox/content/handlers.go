package content

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"brainbox/pkg/brainbox/auth"
	"brainbox/pkg/brainbox/models"
)

// Handler handles content-related requests
type Handler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHandler creates a new content handler
func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// CreateContentRequest represents the request to create content
type CreateContentRequest struct {
	Type  string   `json:"type" binding:"required"`
	Link  string   `json:"link" binding:"required"`
	Title string   `json:"title" binding:"required"`
	Tags  []string `json:"tags"`
}

// DeleteContentRequest represents the request to delete content
type DeleteContentRequest struct {
	ContentID uint `json:"contentId" binding:"required"`
}

// UserResponse represents the owning user in content responses
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ContentResponse represents a content record in API responses, with tags
// resolved to their names
type ContentResponse struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Link      string       `json:"link"`
	Type      string       `json:"type"`
	Tags      []string     `json:"tags"`
	User      UserResponse `json:"user"`
	CreatedAt string       `json:"created_at"`
}

func contentToResponse(content models.Content) ContentResponse {
	tags := make([]string, len(content.Tags))
	for i, t := range content.Tags {
		tags[i] = t.Name
	}
	return ContentResponse{
		ID:    content.ID,
		Title: content.Title,
		Link:  content.Link,
		Type:  string(content.Type),
		Tags:  tags,
		User: UserResponse{
			ID:       content.User.ID,
			Username: content.User.Username,
		},
		CreatedAt: content.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponses converts content records to their API response shape
func ToResponses(records []models.Content) []ContentResponse {
	responses := make([]ContentResponse, len(records))
	for i, record := range records {
		responses[i] = contentToResponse(record)
	}
	return responses
}

// List returns all content owned by the authenticated user
// @Summary List content
// @Description List the authenticated user's content with tag names resolved
// @Tags content
// @Produce json
// @Success 200 {object} map[string][]ContentResponse
// @Failure 403 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /content [get]
func (h *Handler) List(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var records []models.Content
	if err := h.db.Preload("Tags").Preload("User").Where("user_id = ?", userID).Find(&records).Error; err != nil {
		h.logger.Error("failed to fetch content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": ToResponses(records)})
}

// Create creates a new content record for the authenticated user
// @Summary Create content
// @Description Create a content record, lazily creating any new tags
// @Tags content
// @Accept json
// @Produce json
// @Param request body CreateContentRequest true "Content details"
// @Success 201 {object} ContentResponse
// @Failure 400 {object} map[string]string "Invalid content type"
// @Security BearerAuth
// @Router /content [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contentType := models.ContentType(req.Type)
	if !contentType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content type"})
		return
	}

	record := models.Content{
		Title:  req.Title,
		Link:   req.Link,
		Type:   contentType,
		UserID: userID,
	}

	// Find-or-create tags and create the record in one transaction, so
	// concurrent identical requests cannot race duplicate tags past the
	// unique index on tags.name.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var tags []models.Tag
		for _, name := range req.Tags {
			if name == "" {
				continue
			}
			var tag models.Tag
			if err := tx.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
				return err
			}
			tags = append(tags, tag)
		}
		record.Tags = tags
		return tx.Create(&record).Error
	})
	if err != nil {
		h.logger.Error("failed to create content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content"})
		return
	}

	if err := h.db.First(&record.User, userID).Error; err != nil {
		h.logger.Error("failed to load content owner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content"})
		return
	}

	c.JSON(http.StatusCreated, contentToResponse(record))
}

// Delete deletes a content record owned by the authenticated user
// @Summary Delete content
// @Description Delete a content record. Only the owner may delete it.
// @Tags content
// @Accept json
// @Produce json
// @Param request body DeleteContentRequest true "Content id"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Content not found"
// @Security BearerAuth
// @Router /content [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req DeleteContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var record models.Content
	if err := h.db.First(&record, req.ContentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	// Ownership check: authorization, not just authentication
	if record.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete this content"})
		return
	}

	// Tags are shared across records; only the association rows go
	if err := h.db.Model(&record).Association("Tags").Clear(); err != nil {
		h.logger.Error("failed to clear content tags", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content"})
		return
	}
	if err := h.db.Delete(&record).Error; err != nil {
		h.logger.Error("failed to delete content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}

// RegisterRoutes registers content routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content", h.List)
	rg.POST("/content", h.Create)
	rg.DELETE("/content", h.Delete)
}
