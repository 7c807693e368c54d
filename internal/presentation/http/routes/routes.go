// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/container"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/presentation/http/handlers"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/presentation/http/middleware"
	"github.com/PixelCraftAgency/pixelcraft-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Uploaded media is served directly from disk.
	r.Static("/media", config.MediaBasePath)

	// Initialize handlers
	contentHandlers := handlers.NewContentHandlers(container.ContentService, container.Logger)
	chatHandlers := handlers.NewChatHandlers(container.ChatService, container.Logger)
	estimatorHandlers := handlers.NewEstimatorHandlers(container.EstimatorService, container.Logger)
	voteHandlers := handlers.NewVoteHandlers(container.VoteService, container.Logger)
	contactHandlers := handlers.NewContactHandlers(container.ContactService, container.Logger)
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger)
	adminHandlers := handlers.NewAdminHandlers(container.ContentService, container.ContactService, container.ImageProcessor, container.Logger)
	healthHandlers := handlers.NewHealthHandlers(container.Database, container.CacheManager)

	// Unmatched API paths get a JSON 404 instead of gin's default body.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "route not found", "path": c.Request.URL.Path})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/health", healthHandlers.GetHealth)

		// Content endpoints
		content := api.Group("/content")
		{
			content.GET("", contentHandlers.GetDocument)
			content.GET("/site", contentHandlers.GetSite)
			content.GET("/navigation", contentHandlers.GetNavigation)
			content.GET("/hero", contentHandlers.GetHero)
			content.GET("/stats", contentHandlers.GetStats)
			content.GET("/pricing", contentHandlers.GetPricing)
			content.GET("/team", contentHandlers.GetTeam)
			content.GET("/timeline", contentHandlers.GetTimeline)
			content.GET("/gallery", contentHandlers.GetGallery)
			content.GET("/faq", contentHandlers.GetFAQ)
			content.GET("/careers", contentHandlers.GetCareers)
			content.GET("/contact", contentHandlers.GetContact)
			content.GET("/footer", contentHandlers.GetFooter)
			content.GET("/not-found", contentHandlers.GetNotFound)
			content.GET("/map", contentHandlers.GetContentMap)
			content.GET("/services", contentHandlers.GetServices)
			content.GET("/services/:id", contentHandlers.GetServiceByID)
			content.GET("/projects", contentHandlers.GetProjects)
			content.GET("/projects/:id", contentHandlers.GetProjectByID)
			content.GET("/demo-projects", contentHandlers.GetDemoProjects)
			content.GET("/demo-projects/:id", contentHandlers.GetDemoProjectByID)
			content.GET("/blog/posts", contentHandlers.GetBlogPosts)
			content.GET("/blog/posts/:id", contentHandlers.GetBlogPostByID)
		}

		// Assistant widget
		chat := api.Group("/chat")
		{
			chat.POST("/sessions", chatHandlers.CreateSession)
			chat.GET("/sessions/:id", chatHandlers.GetSession)
			chat.POST("/sessions/:id/messages", chatHandlers.PostMessage)
			chat.GET("/sessions/:id/ws", chatHandlers.StreamSession)
		}

		// Cost estimator wizard
		estimator := api.Group("/estimator")
		{
			estimator.POST("/sessions", estimatorHandlers.CreateWizard)
			estimator.GET("/sessions/:id", estimatorHandlers.GetWizard)
			estimator.POST("/sessions/:id/select", estimatorHandlers.PostSelect)
			estimator.POST("/sessions/:id/next", estimatorHandlers.PostNext)
			estimator.POST("/sessions/:id/back", estimatorHandlers.PostBack)
			estimator.POST("/sessions/:id/calculate", estimatorHandlers.PostCalculate)
			estimator.POST("/sessions/:id/reset", estimatorHandlers.PostReset)
		}

		// Blog vote widget
		api.GET("/blog/posts/:id/votes", voteHandlers.GetTally)
		api.POST("/blog/posts/:id/votes", voteHandlers.PostVote)

		// Contact form
		api.POST("/contact", contactHandlers.PostContact)

		// Admin authentication
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandlers.PostLogin)
			auth.GET("/status", authHandlers.GetStatus)
		}

		// Authenticated admin surface
		admin := api.Group("/admin")
		admin.Use(authHandlers.AdminMiddleware())
		{
			admin.POST("/content/reload", adminHandlers.PostContentReload)
			admin.GET("/leads", adminHandlers.GetLeads)
			admin.POST("/media", adminHandlers.PostMediaUpload)
		}
	}

	return r
}
