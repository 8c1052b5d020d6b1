package api

import (
	"github.com/gin-gonic/gin"

	"github.com/krishnaa-0506/always/internal/api/handler"
	"github.com/krishnaa-0506/always/internal/api/middleware"
	"github.com/krishnaa-0506/always/internal/logger"
	"github.com/krishnaa-0506/always/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	generationService *service.GenerationService,
	photoService *service.PhotoService,
	mode string,
	cors middleware.CORSConfig,
	log *logger.Logger,
) *gin.Engine {
	// Set Gin mode
	switch mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(cors))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	messageHandler := handler.NewMessageHandler(generationService)
	photoHandler := handler.NewPhotoHandler(photoService)
	viewHandler := handler.NewViewHandler(generationService)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Message lifecycle
		v1.POST("/messages", messageHandler.Create)
		v1.GET("/messages/:id", messageHandler.Get)
		v1.POST("/messages/:id/generate", messageHandler.Generate)

		// Photos
		v1.POST("/messages/:id/photos", photoHandler.Upload)
		v1.GET("/messages/:id/photos", photoHandler.List)

		// Receiver-facing view by shareable code
		v1.GET("/view/:code", viewHandler.View)

		// Stats
		v1.GET("/stats", messageHandler.GetStats)
	}

	return r
}
