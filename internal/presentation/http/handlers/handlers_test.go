package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/user"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	contentstore "github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/content"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
	"github.com/PixelCraftAgency/pixelcraft-go/pkg/config"
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
      {"id": "marketing-site", "label": "Marketing site", "multiplier": 1.2}
    ]},
    {"key": "features", "title": "Extras", "kind": "multi", "options": [
      {"id": "cms", "label": "CMS", "points": 4}
    ]}
  ]}
}`

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		DefaultLevel:  slog.LevelError,
		ChannelLevels: make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)
	return logger
}

func testContentService(t *testing.T) *services.ContentService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))
	store, err := contentstore.NewStore(path)
	require.NoError(t, err)
	return services.NewContentService(store, testLogger(t))
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestContentDetailAndNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewContentHandlers(testContentService(t), testLogger(t))

	router := gin.New()
	router.GET("/api/v1/content/services/:id", h.GetServiceByID)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/content/services/web-design", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Web Design", decode(t, rec)["title"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/content/services/no-such", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "/services", decode(t, rec)["parent"], "404 points back to the listing")
}

func TestContentMapEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewContentHandlers(testContentService(t), testLogger(t))

	router := gin.New()
	router.GET("/api/v1/content/map", h.GetContentMap)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/content/map", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(3), body["count"], "one nav page, one service, one post")
}

func TestVoteEndpointsRequireSessionHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	content := testContentService(t)
	cache := manager.NewManager(testLogger(t))
	h := NewVoteHandlers(services.NewVoteService(content, cache, testLogger(t)), testLogger(t))

	router := gin.New()
	router.GET("/api/v1/blog/posts/:id/votes", h.GetTally)
	router.POST("/api/v1/blog/posts/:id/votes", h.PostVote)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/blog/posts/first-post/votes", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	header := map[string]string{SessionIDHeader: "view-abc"}
	rec = doJSON(t, router, http.MethodGet, "/api/v1/blog/posts/first-post/votes", nil, header)
	assert.Equal(t, http.StatusOK, rec.Code)
	seeded := decode(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/blog/posts/first-post/votes", gin.H{"vote": "like"}, header)
	assert.Equal(t, http.StatusOK, rec.Code)
	after := decode(t, rec)
	assert.Equal(t, seeded["likes"].(float64)+1, after["likes"])
	assert.Equal(t, "like", after["activeVote"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/blog/posts/no-such-post/votes", nil, header)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEstimatorFlowOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	content := testContentService(t)
	cache := manager.NewManager(testLogger(t))
	repo := &nopLeadRepo{}
	h := NewEstimatorHandlers(services.NewEstimatorService(content, cache, repo, testLogger(t)), testLogger(t))

	router := gin.New()
	router.POST("/api/v1/estimator/sessions", h.CreateWizard)
	router.POST("/api/v1/estimator/sessions/:id/select", h.PostSelect)
	router.POST("/api/v1/estimator/sessions/:id/calculate", h.PostCalculate)
	router.POST("/api/v1/estimator/sessions/:id/reset", h.PostReset)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/estimator/sessions", nil, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	wizardID := decode(t, rec)["wizardId"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/estimator/sessions/"+wizardID+"/select",
		gin.H{"stepKey": "project-type", "optionId": "marketing-site"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["stepIndex"], "single-select auto-advances")

	rec = doJSON(t, router, http.MethodPost, "/api/v1/estimator/sessions/"+wizardID+"/calculate", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	estimate := decode(t, rec)["estimate"].(map[string]any)
	assert.Equal(t, float64(3600), estimate["total"])

	rec = doJSON(t, router, http.MethodPost, "/api/v1/estimator/sessions/"+wizardID+"/reset", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["resultShown"])

	rec = doJSON(t, router, http.MethodPost, "/api/v1/estimator/sessions/no-such/calculate", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminAuthRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("studio-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	config.AdminPasswordHash = string(hash)
	config.JWTSecret = "test-secret"
	config.AdminTokenTTL = time.Hour

	authService := services.NewAuthService(testLogger(t))
	h := NewAuthHandlers(authService, testLogger(t))

	router := gin.New()
	router.POST("/api/v1/auth/login", h.PostLogin)
	protected := router.Group("/api/v1/admin", h.AdminMiddleware())
	protected.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{"password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{"password": "studio-secret"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/ping", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/ping", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)
}

// nopLeadRepo satisfies user.LeadRepository for handler tests.
type nopLeadRepo struct{}

func (r *nopLeadRepo) Store(_ *user.Lead) error            { return nil }
func (r *nopLeadRepo) MarkDelivered(_ string) error        { return nil }
func (r *nopLeadRepo) FindAll(_ int) ([]*user.Lead, error) { return nil, nil }
