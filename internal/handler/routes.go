package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/pkg/logger"
)

// Services groups what the HTTP layer needs
type Services struct {
	Menu         service.MenuService
	QuickEdit    service.QuickEditService
	Gallery      service.GalleryService
	Event        service.EventService
	Promoter     service.PromoterService
	OperationLog service.OperationLogService
}

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, services Services, logger *logger.Logger) {
	// Initialize handlers
	menuHandler := NewMenuHandler(services.Menu, logger)
	quickEditHandler := NewQuickEditHandler(services.QuickEdit, logger)
	galleryHandler := NewGalleryHandler(services.Gallery, logger)
	eventHandler := NewEventHandler(services.Event, logger)
	promoterHandler := NewPromoterHandler(services.Promoter, logger)
	operationLogHandler := NewOperationLogHandler(services.OperationLog, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Bar routes
		bars := v1.Group("/bars")
		{
			bars.GET("", menuHandler.ListBars)
			bars.POST("", menuHandler.CreateBar)
			bars.GET("/:id", menuHandler.GetBar)
			bars.PUT("/:id", menuHandler.UpdateBar)
			bars.DELETE("/:id", menuHandler.DeleteBar)
		}

		// Category and subcategory routes
		categories := v1.Group("/categories")
		{
			categories.GET("", menuHandler.ListCategories)
			categories.POST("", menuHandler.CreateCategory)
			categories.PUT("/:id", menuHandler.UpdateCategory)
			categories.DELETE("/:id", menuHandler.DeleteCategory)
			categories.GET("/:id/subcategories", quickEditHandler.Load)
			categories.PUT("/:id/subcategories", quickEditHandler.Save)
		}

		// Item routes
		items := v1.Group("/items")
		{
			items.GET("", menuHandler.ListItems)
			items.POST("", menuHandler.CreateItem)
			items.POST("/bulk-delete", menuHandler.BulkDelete)
			items.POST("/bulk-visibility", menuHandler.BulkSetVisibility)
			items.GET("/:id", menuHandler.GetItem)
			items.PUT("/:id", menuHandler.UpdateItem)
			items.DELETE("/:id", menuHandler.DeleteItem)
			items.POST("/:id/toggle-visibility", menuHandler.ToggleVisibility)
		}

		// Trash routes
		trash := v1.Group("/trash")
		{
			trash.GET("", menuHandler.ListTrash)
			trash.POST("/:id/restore", menuHandler.RestoreTrash)
		}

		// Seal routes
		seals := v1.Group("/seals")
		{
			seals.GET("", menuHandler.ListSeals)
			seals.GET("/wine/:attribute", menuHandler.WineValues)
		}

		// Gallery and image routes
		gallery := v1.Group("/gallery")
		{
			gallery.GET("", galleryHandler.List)
			gallery.POST("", galleryHandler.Upload)
			gallery.POST("/refresh", galleryHandler.Refresh)
			gallery.DELETE("/:id", galleryHandler.Delete)
		}
		images := v1.Group("/images")
		{
			images.GET("/resolve", galleryHandler.ResolveOne)
			images.POST("/resolve", galleryHandler.Resolve)
		}

		// Event routes
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.POST("/upload-image", eventHandler.UploadImage)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		// Operational detail routes
		details := v1.Group("/operational-details")
		{
			details.GET("", eventHandler.ListOperationalDetails)
			details.POST("", eventHandler.CreateOperationalDetail)
			details.PUT("/:id", eventHandler.UpdateOperationalDetail)
			details.DELETE("/:id", eventHandler.DeleteOperationalDetail)
		}

		// Promoter routes
		promoter := v1.Group("/promoter")
		{
			promoter.GET("/events", promoterHandler.ListEvents)
			promoter.POST("/guests/preview", promoterHandler.PreviewImport)
			promoter.GET("/guest-lists/:id/guests", promoterHandler.ListGuests)
			promoter.POST("/guest-lists/:id/guests", promoterHandler.AddGuest)
			promoter.POST("/guest-lists/:id/import", promoterHandler.ImportGuests)
			promoter.GET("/guest-lists/:id/summary", promoterHandler.Summary)
			promoter.GET("/guest-lists/:id/export", promoterHandler.ExportGuests)
		}

		// Operation log routes
		operations := v1.Group("/operations")
		{
			operations.GET("", operationLogHandler.List)
			operations.GET("/:documentId", operationLogHandler.Get)
		}
	}
}

// HealthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Cardapio Admin Service",
	})
}
