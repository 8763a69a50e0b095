package handler

import (
	"net/http"

	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/pkg/logger"
	"cardapio-admin-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps image uploads
const maxUploadBytes = 10 << 20

// ResolveRequest lists stored image references to resolve
type ResolveRequest struct {
	References []string `json:"references" binding:"required"`
}

// GalleryHandler handles the image library and image resolution
type GalleryHandler struct {
	galleryService service.GalleryService
	logger         *logger.Logger
}

// NewGalleryHandler creates a new GalleryHandler instance
func NewGalleryHandler(galleryService service.GalleryService, logger *logger.Logger) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		logger:         logger,
	}
}

// List returns the image library
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.GalleryImage}
// @Router /api/v1/gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.galleryService.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, "Failed to list gallery", err)
		return
	}
	utils.SuccessResponse(c, "Gallery retrieved successfully", images)
}

// Upload stores an image in the library
// @Summary Upload gallery image
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param folder formData string false "Folder" default(cardapio)
// @Success 201 {object} utils.APIResponse{data=models.GalleryImage}
// @Failure 400 {object} utils.APIResponse "Missing file"
// @Router /api/v1/gallery [post]
func (h *GalleryHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "File is required", err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read file", err)
		return
	}
	defer file.Close()

	img, err := h.galleryService.Upload(c.Request.Context(), fileHeader.Filename, c.DefaultPostForm("folder", "cardapio"), file)
	if err != nil {
		handleError(c, h.logger, "Failed to upload image", err)
		return
	}
	utils.CreatedResponse(c, "Image uploaded successfully", img)
}

// Delete removes an image from the library
// @Summary Delete gallery image
// @Tags gallery
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.galleryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, h.logger, "Failed to delete image", err)
		return
	}
	utils.SuccessResponse(c, "Image deleted successfully", nil)
}

// Refresh reloads the image index
// @Summary Refresh image index
// @Tags gallery
// @Produce json
// @Success 200 {object} utils.APIResponse{data=service.RefreshResult}
// @Router /api/v1/gallery/refresh [post]
func (h *GalleryHandler) Refresh(c *gin.Context) {
	res, err := h.galleryService.Refresh(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, "Failed to refresh image index", err)
		return
	}
	utils.SuccessResponse(c, "Image index refreshed successfully", res)
}

// Resolve returns displayable URLs for stored references
// @Summary Resolve image references
// @Description Unknown bare filenames and untrusted hosts resolve to the placeholder.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "References"
// @Success 200 {object} utils.APIResponse{data=map[string]string}
// @Router /api/v1/images/resolve [post]
func (h *GalleryHandler) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must list references", err)
		return
	}
	utils.SuccessResponse(c, "Images resolved successfully", h.galleryService.ResolveBatch(c.Request.Context(), req.References))
}

// ResolveOne resolves a single reference
// @Summary Resolve one image reference
// @Tags gallery
// @Produce json
// @Param ref query string false "Stored reference"
// @Success 200 {object} utils.APIResponse{data=string}
// @Router /api/v1/images/resolve [get]
func (h *GalleryHandler) ResolveOne(c *gin.Context) {
	utils.SuccessResponse(c, "Image resolved successfully", h.galleryService.Resolve(c.Request.Context(), c.Query("ref")))
}
