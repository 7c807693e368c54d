// Package services contains application services orchestrating between
// domain entities and infrastructure.
package services

import (
	"fmt"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/content"
	contentstore "github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/content"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// ContentService exposes read access to the site content document and
// supports hot reload of the backing JSON file.
type ContentService struct {
	store  *contentstore.Store
	logger *logging.ChanneledLogger
}

func NewContentService(store *contentstore.Store, logger *logging.ChanneledLogger) *ContentService {
	return &ContentService{
		store:  store,
		logger: logger,
	}
}

// Document returns the current content document snapshot.
func (s *ContentService) Document() *contentstore.Document {
	return s.store.Document()
}

// Site returns the site-wide configuration block.
func (s *ContentService) Site() *content.SiteConfig {
	return s.store.Document().Site
}

// ServiceByID returns nil when no service matches; callers treat that
// as a normal not-found branch, not an error.
func (s *ContentService) ServiceByID(id string) *content.ServiceRecord {
	return s.store.ServiceByID(id)
}

func (s *ContentService) ProjectByID(id string) *content.ProjectRecord {
	return s.store.ProjectByID(id)
}

func (s *ContentService) DemoProjectByID(id string) *content.DemoProjectRecord {
	return s.store.DemoProjectByID(id)
}

func (s *ContentService) BlogPostByID(id string) *content.BlogPost {
	return s.store.BlogPostByID(id)
}

// Map returns the flat route map used by crawl-style consumers.
func (s *ContentService) Map() []*content.MapEntry {
	return s.store.Map()
}

// Reload re-reads the content file and swaps the document atomically.
// Requests in flight keep the snapshot they started with.
func (s *ContentService) Reload() error {
	if err := s.store.Reload(); err != nil {
		s.logger.Content().Error("Content reload failed", "error", err)
		return fmt.Errorf("failed to reload content: %w", err)
	}
	doc := s.store.Document()
	s.logger.Content().Info("Content reloaded",
		"services", len(doc.Services),
		"projects", len(doc.Projects),
		"blogPosts", len(doc.Blog.Posts))
	return nil
}
