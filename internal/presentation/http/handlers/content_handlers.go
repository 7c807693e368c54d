// Package handlers provides HTTP handlers for the public site API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// ContentHandlers serves the site content document and its sections.
type ContentHandlers struct {
	contentService *services.ContentService
	logger         *logging.ChanneledLogger
}

func NewContentHandlers(contentService *services.ContentService, logger *logging.ChanneledLogger) *ContentHandlers {
	return &ContentHandlers{
		contentService: contentService,
		logger:         logger,
	}
}

// GetDocument returns the full content document in one response.
func (h *ContentHandlers) GetDocument(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document())
}

// GetSite returns the site-wide configuration block.
func (h *ContentHandlers) GetSite(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Site())
}

// GetNavigation returns the header navigation entries.
func (h *ContentHandlers) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Navigation)
}

// GetHero returns the landing hero block.
func (h *ContentHandlers) GetHero(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Hero)
}

// GetStats returns the headline statistics.
func (h *ContentHandlers) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Stats)
}

// GetPricing returns all pricing tier groups.
func (h *ContentHandlers) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Pricing)
}

// GetTeam returns the team member list.
func (h *ContentHandlers) GetTeam(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Team)
}

// GetTimeline returns the company timeline.
func (h *ContentHandlers) GetTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Timeline)
}

// GetGallery returns the gallery images.
func (h *ContentHandlers) GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Gallery)
}

// GetFAQ returns the FAQ entries.
func (h *ContentHandlers) GetFAQ(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().FAQ)
}

// GetCareers returns the open positions.
func (h *ContentHandlers) GetCareers(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Careers)
}

// GetContact returns the contact page configuration.
func (h *ContentHandlers) GetContact(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Contact)
}

// GetFooter returns the footer configuration.
func (h *ContentHandlers) GetFooter(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().Footer)
}

// GetNotFound returns the copy for the not-found page.
func (h *ContentHandlers) GetNotFound(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Document().NotFound)
}

// GetServices returns all service records.
func (h *ContentHandlers) GetServices(c *gin.Context) {
	doc := h.contentService.Document()
	c.JSON(http.StatusOK, gin.H{
		"services": doc.Services,
		"count":    len(doc.Services),
	})
}

// GetServiceByID returns a single service or 404. An unknown ID is a
// routine outcome, not a server fault.
func (h *ContentHandlers) GetServiceByID(c *gin.Context) {
	id := c.Param("id")
	svc := h.contentService.ServiceByID(id)
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found", "id": id, "parent": "/services"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetProjects returns all portfolio projects.
func (h *ContentHandlers) GetProjects(c *gin.Context) {
	doc := h.contentService.Document()
	c.JSON(http.StatusOK, gin.H{
		"projects": doc.Projects,
		"count":    len(doc.Projects),
	})
}

// GetProjectByID returns a single project or 404.
func (h *ContentHandlers) GetProjectByID(c *gin.Context) {
	id := c.Param("id")
	project := h.contentService.ProjectByID(id)
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found", "id": id, "parent": "/work"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetDemoProjects returns all demo project records.
func (h *ContentHandlers) GetDemoProjects(c *gin.Context) {
	doc := h.contentService.Document()
	c.JSON(http.StatusOK, gin.H{
		"demoProjects": doc.DemoProjects,
		"count":        len(doc.DemoProjects),
	})
}

// GetDemoProjectByID returns a single demo project or 404.
func (h *ContentHandlers) GetDemoProjectByID(c *gin.Context) {
	id := c.Param("id")
	demo := h.contentService.DemoProjectByID(id)
	if demo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "demo project not found", "id": id, "parent": "/demo-projects"})
		return
	}
	c.JSON(http.StatusOK, demo)
}

// GetBlogPosts returns all blog posts.
func (h *ContentHandlers) GetBlogPosts(c *gin.Context) {
	doc := h.contentService.Document()
	c.JSON(http.StatusOK, gin.H{
		"posts": doc.Blog.Posts,
		"count": len(doc.Blog.Posts),
	})
}

// GetBlogPostByID returns a single blog post or 404.
func (h *ContentHandlers) GetBlogPostByID(c *gin.Context) {
	id := c.Param("id")
	post := h.contentService.BlogPostByID(id)
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found", "id": id, "parent": "/blog"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetContentMap returns the flat route map of all addressable pages.
func (h *ContentHandlers) GetContentMap(c *gin.Context) {
	entries := h.contentService.Map()
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}
