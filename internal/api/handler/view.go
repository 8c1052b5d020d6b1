package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnaa-0506/always/internal/content"
	"github.com/krishnaa-0506/always/internal/service"
)

// ViewHandler handles the receiver-facing view endpoint.
type ViewHandler struct {
	generation *service.GenerationService
}

// NewViewHandler creates a new view handler.
// Parameters:
//   - generation: generation service instance.
// Returns:
//   - *ViewHandler: initialized handler.
func NewViewHandler(generation *service.GenerationService) *ViewHandler {
	return &ViewHandler{
		generation: generation,
	}
}

// View handles GET /api/v1/view/:code. Codes are case-insensitive; unknown
// codes return 404 without leaking whether the code was ever issued.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ViewHandler) View(c *gin.Context) {
	code := c.Param("code")
	if len(code) != content.CodeLength {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	resp, err := h.generation.ViewByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load message: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
