package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnaa-0506/always/internal/content"
	"github.com/krishnaa-0506/always/internal/service"
)

// MessageHandler handles message lifecycle endpoints.
type MessageHandler struct {
	generation *service.GenerationService
}

// NewMessageHandler creates a new message handler.
// Parameters:
//   - generation: generation service instance.
// Returns:
//   - *MessageHandler: initialized handler.
func NewMessageHandler(generation *service.GenerationService) *MessageHandler {
	return &MessageHandler{
		generation: generation,
	}
}

// Create handles POST /api/v1/messages.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *MessageHandler) Create(c *gin.Context) {
	var req service.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	msg, err := h.generation.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create message: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// Get handles GET /api/v1/messages/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *MessageHandler) Get(c *gin.Context) {
	msg, err := h.generation.GetMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get message: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, msg)
}

// Generate handles POST /api/v1/messages/:id/generate.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *MessageHandler) Generate(c *gin.Context) {
	result, err := h.generation.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case errors.Is(err, content.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No content available for this combination"})
		case errors.Is(err, service.ErrCodeSpaceExhausted):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to allocate a shareable code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Generation failed: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStats handles GET /api/v1/stats.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *MessageHandler) GetStats(c *gin.Context) {
	stats, err := h.generation.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
