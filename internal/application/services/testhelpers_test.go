package services

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/user"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	contentstore "github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/content"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

const testDocument = `{
  "site": {"name": "PixelCraft", "tagline": "t", "description": "A digital agency.", "email": "hello@pixelcraft.agency", "phone": "+1 (555) 014-2890", "address": "412 Harbor Lane, Portland"},
  "navigation": [{"label": "Home", "path": "/"}],
  "services": [{"id": "web-design", "title": "Web Design", "summary": "Custom sites.", "description": "d", "startingPrice": 3000}],
  "blog": {"posts": [{"id": "first-post", "title": "First Post", "author": "Maya", "date": "2026-01-01", "excerpt": "e", "body": "b"}]},
  "contact": {"heading": "h", "text": "t", "serviceOptions": ["Web Design"], "budgetOptions": ["$5k"]},
  "notFound": {"heading": "h", "text": "t", "backLabel": "Back", "backPath": "/"},
  "estimator": {"basePrice": 3000, "pointWeight": 150, "currency": "USD", "steps": [
    {"key": "project-type", "title": "Type", "kind": "single", "required": true, "options": [
      {"id": "marketing-site", "label": "Marketing site", "multiplier": 1.2},
      {"id": "web-app", "label": "Web application", "multiplier": 2.8}
    ]},
    {"key": "features", "title": "Extras", "kind": "multi", "options": [
      {"id": "cms", "label": "CMS", "points": 4},
      {"id": "multilingual", "label": "Languages", "points": 6}
    ]}
  ]}
}`

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		DefaultLevel:    slog.LevelError,
		ChannelLevels:   make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)
	return logger
}

func newTestContent(t *testing.T) *ContentService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))

	store, err := contentstore.NewStore(path)
	require.NoError(t, err)
	return NewContentService(store, newTestLogger(t))
}

func newTestCache(t *testing.T) *manager.Manager {
	t.Helper()
	return manager.NewManager(newTestLogger(t))
}

// memLeadRepo is an in-memory LeadRepository for service tests.
type memLeadRepo struct {
	mu        sync.Mutex
	leads     []*user.Lead
	delivered map[string]bool
	storeErr  error
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{delivered: make(map[string]bool)}
}

func (r *memLeadRepo) Store(lead *user.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.storeErr != nil {
		return r.storeErr
	}
	r.leads = append(r.leads, lead)
	return nil
}

func (r *memLeadRepo) MarkDelivered(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered[id] = true
	return nil
}

func (r *memLeadRepo) FindAll(limit int) ([]*user.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.leads) {
		limit = len(r.leads)
	}
	return r.leads[:limit], nil
}
