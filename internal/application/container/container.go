// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/ai"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	contentstore "github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/content"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/database"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/email"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/media"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
	persistence "github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/persistence/user"
	"github.com/PixelCraftAgency/pixelcraft-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services (stateless singletons)
	ContentService   *services.ContentService
	ChatService      *services.ChatService
	EstimatorService *services.EstimatorService
	VoteService      *services.VoteService
	ContactService   *services.ContactService
	AuthService      *services.AuthService

	// Infrastructure dependencies
	Logger         *logging.ChanneledLogger
	ContentStore   *contentstore.Store
	Database       *database.Database
	CacheManager   *manager.Manager
	ImageProcessor *media.ImageProcessor
}

// NewContainer creates and wires all singleton services
func NewContainer(logger *logging.ChanneledLogger, store *contentstore.Store, db *database.Database, cacheManager *manager.Manager) (*Container, error) {
	contentService := services.NewContentService(store, logger)
	leadRepo := persistence.NewSQLLeadRepository(db, logger)

	var provider ai.Provider
	if config.OpenAIAPIKey != "" {
		provider = ai.NewOpenAIProvider(config.OpenAIAPIKey, config.ChatModel)
	} else {
		logger.Startup().Warn("No remote completion credential configured, assistant runs local-only")
	}

	var emailService email.Service
	if config.ResendAPIKey != "" {
		svc, err := email.NewService(config.ResendAPIKey, config.ContactEmailFrom, config.ContactEmailName, config.ContactEmailTo)
		if err != nil {
			return nil, fmt.Errorf("failed to create email service: %w", err)
		}
		emailService = svc
	} else {
		logger.Startup().Warn("No email credential configured, contact leads are stored without delivery")
	}

	imageProcessor := media.NewImageProcessor(config.MediaBasePath, config.MediaThumbWidth, config.MediaWebPQuality)

	return &Container{
		ContentService:   contentService,
		ChatService:      services.NewChatService(contentService, cacheManager, provider, logger),
		EstimatorService: services.NewEstimatorService(contentService, cacheManager, leadRepo, logger),
		VoteService:      services.NewVoteService(contentService, cacheManager, logger),
		ContactService:   services.NewContactService(leadRepo, emailService, logger),
		AuthService:      services.NewAuthService(logger),

		Logger:         logger,
		ContentStore:   store,
		Database:       db,
		CacheManager:   cacheManager,
		ImageProcessor: imageProcessor,
	}, nil
}
