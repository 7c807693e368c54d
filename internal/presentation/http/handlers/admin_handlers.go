package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/media"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// MediaUploadRequest represents a base64 image upload.
type MediaUploadRequest struct {
	Data     string `json:"data" binding:"required"`
	Filename string `json:"filename" binding:"required"`
	Subdir   string `json:"subdir"`
}

// AdminHandlers serves the authenticated admin surface: content reload,
// lead listing, and media uploads.
type AdminHandlers struct {
	contentService *services.ContentService
	contactService *services.ContactService
	imageProcessor *media.ImageProcessor
	logger         *logging.ChanneledLogger
}

func NewAdminHandlers(contentService *services.ContentService, contactService *services.ContactService, imageProcessor *media.ImageProcessor, logger *logging.ChanneledLogger) *AdminHandlers {
	return &AdminHandlers{
		contentService: contentService,
		contactService: contactService,
		imageProcessor: imageProcessor,
		logger:         logger,
	}
}

// PostContentReload re-reads the content file and swaps the document.
func (h *AdminHandlers) PostContentReload(c *gin.Context) {
	if err := h.contentService.Reload(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	doc := h.contentService.Document()
	c.JSON(http.StatusOK, gin.H{
		"status":    "reloaded",
		"services":  len(doc.Services),
		"projects":  len(doc.Projects),
		"blogPosts": len(doc.Blog.Posts),
	})
}

// GetLeads lists stored leads, newest first.
func (h *AdminHandlers) GetLeads(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
			return
		}
		limit = parsed
	}

	leads, err := h.contactService.Leads(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

// PostMediaUpload stores a base64 image and generates a WebP thumbnail.
func (h *AdminHandlers) PostMediaUpload(c *gin.Context) {
	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	subdir := req.Subdir
	if subdir == "" {
		subdir = "images"
	}

	path, thumbPath, err := h.imageProcessor.ProcessUpload(req.Data, req.Filename, subdir)
	if err != nil {
		h.logger.System().Error("Media upload failed", "filename", req.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path":      path,
		"thumbPath": thumbPath,
	})
}
