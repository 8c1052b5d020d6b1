package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnaa-0506/always/internal/service"
)

// PhotoHandler handles photo upload endpoints.
type PhotoHandler struct {
	photoService *service.PhotoService
}

// NewPhotoHandler creates a new photo handler.
// Parameters:
//   - photoService: photo service instance.
// Returns:
//   - *PhotoHandler: initialized handler.
func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

// Upload handles POST /api/v1/messages/:id/photos. Expects a multipart form
// with a "photo" file field and an optional "caption" field.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *PhotoHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing 'photo' file field: " + err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read upload: " + err.Error(),
		})
		return
	}
	defer file.Close()

	photo, err := h.photoService.Attach(c.Request.Context(), c.Param("id"), file, c.PostForm("caption"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case errors.Is(err, service.ErrPhotoLimitReached):
			c.JSON(http.StatusConflict, gin.H{"error": "Photo limit reached for this message"})
		case errors.Is(err, service.ErrNotAnImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not a supported image"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to store photo: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// List handles GET /api/v1/messages/:id/photos.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.photoService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list photos: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"photos": photos,
		"total":  len(photos),
	})
}
