package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{
  "site": {"name": "PixelCraft", "email": "hello@pixelcraft.agency", "phone": "+1 555", "address": "Portland"},
  "navigation": [{"label": "Home", "path": "/"}],
  "services": [
    {"id": "web-design", "title": "Web Design", "summary": "s", "description": "d"},
    {"id": "branding", "title": "Branding", "summary": "s", "description": "d"}
  ],
  "projects": [{"id": "harborline", "title": "Harborline", "category": "Branding", "summary": "s", "description": "d"}],
  "demoProjects": [{"id": "cafe-starter", "title": "Café Starter", "category": "Restaurant", "summary": "s", "description": "d"}],
  "blog": {"posts": [{"id": "first-post", "title": "First Post", "author": "Maya", "date": "2026-01-01", "excerpt": "e", "body": "b"}]},
  "contact": {"heading": "h", "text": "t", "serviceOptions": [], "budgetOptions": []},
  "notFound": {"heading": "h", "text": "t", "backLabel": "Back", "backPath": "/"},
  "estimator": {"basePrice": 1000, "pointWeight": 100, "currency": "USD", "steps": [
    {"key": "a", "title": "A", "kind": "single", "options": [{"id": "x", "multiplier": 1.5}]}
  ]}
}`

func writeTestDocument(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewStoreLoadsDocument(t *testing.T) {
	store, err := NewStore(writeTestDocument(t, testDocument))
	require.NoError(t, err)

	doc := store.Document()
	assert.Equal(t, "PixelCraft", doc.Site.Name)
	assert.Len(t, doc.Services, 2)
	assert.Len(t, doc.Blog.Posts, 1)
}

func TestNewStoreRejectsMissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNewStoreRejectsIncompleteDocument(t *testing.T) {
	_, err := NewStore(writeTestDocument(t, `{"site": {"name": "x"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestLookupsByID(t *testing.T) {
	store, err := NewStore(writeTestDocument(t, testDocument))
	require.NoError(t, err)

	assert.Equal(t, "Web Design", store.ServiceByID("web-design").Title)
	assert.Equal(t, "Harborline", store.ProjectByID("harborline").Title)
	assert.Equal(t, "Café Starter", store.DemoProjectByID("cafe-starter").Title)
	assert.Equal(t, "First Post", store.BlogPostByID("first-post").Title)
}

func TestLookupMissReturnsNil(t *testing.T) {
	store, err := NewStore(writeTestDocument(t, testDocument))
	require.NoError(t, err)

	assert.Nil(t, store.ServiceByID("no-such-service"))
	assert.Nil(t, store.ProjectByID(""))
	assert.Nil(t, store.ServiceByID("WEB-DESIGN"), "lookup is exact, not case-folded")
}

func TestMapCoversDetailRoutes(t *testing.T) {
	store, err := NewStore(writeTestDocument(t, testDocument))
	require.NoError(t, err)

	paths := make(map[string]string)
	for _, entry := range store.Map() {
		paths[entry.Path] = entry.Kind
	}

	assert.Equal(t, "service", paths["/services/web-design"])
	assert.Equal(t, "project", paths["/work/harborline"])
	assert.Equal(t, "demo-project", paths["/demo-projects/cafe-starter"])
	assert.Equal(t, "post", paths["/blog/first-post"])
}

func TestReloadSwapsDocument(t *testing.T) {
	path := writeTestDocument(t, testDocument)
	store, err := NewStore(path)
	require.NoError(t, err)

	before := store.Document()

	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))
	require.NoError(t, store.Reload())

	assert.NotSame(t, before, store.Document(), "reload installs a fresh document pointer")
}

func TestReloadFailureKeepsOldDocument(t *testing.T) {
	path := writeTestDocument(t, testDocument)
	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	assert.Error(t, store.Reload())

	assert.Equal(t, "PixelCraft", store.Document().Site.Name, "a failed reload leaves the document untouched")
}
