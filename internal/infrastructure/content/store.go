// Package content loads the site's static content document and serves it
// read-only for the life of the process. An admin-triggered reload swaps the
// whole document atomically; individual records are never mutated.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/content"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/estimator"
)

// Document is the full structured content file backing every page
type Document struct {
	Site         *content.SiteConfig          `json:"site"`
	Navigation   []*content.NavigationEntry   `json:"navigation"`
	Hero         *content.Hero                `json:"hero"`
	Stats        []*content.Stat              `json:"stats"`
	Services     []*content.ServiceRecord     `json:"services"`
	Pricing      *content.Pricing             `json:"pricing"`
	Projects     []*content.ProjectRecord     `json:"projects"`
	DemoProjects []*content.DemoProjectRecord `json:"demoProjects"`
	Blog         *content.Blog                `json:"blog"`
	Team         []*content.TeamMember        `json:"team"`
	Timeline     []*content.TimelineEntry     `json:"timeline"`
	Gallery      []*content.GalleryImage      `json:"gallery"`
	FAQ          []*content.FAQEntry          `json:"faq"`
	Careers      []*content.CareerOpening     `json:"careers"`
	Contact      *content.ContactInfo         `json:"contact"`
	Footer       *content.FooterConfig        `json:"footer"`
	NotFound     *content.NotFoundCopy        `json:"notFound"`
	Estimator    *estimator.Definition        `json:"estimator"`
}

// Store holds the current document behind an atomic pointer so reads never
// block and a reload is a single swap.
type Store struct {
	path string
	doc  atomic.Pointer[Document]
}

// NewStore loads the content document from path and returns the store
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the content file and swaps the document in one step
func (s *Store) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("could not read content file %s: %w", s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("could not parse content file %s: %w", s.path, err)
	}

	if err := validate(&doc); err != nil {
		return fmt.Errorf("content file %s is incomplete: %w", s.path, err)
	}

	s.doc.Store(&doc)
	return nil
}

// Document returns the current immutable document
func (s *Store) Document() *Document {
	return s.doc.Load()
}

// validate rejects documents missing the sections every page binds to
func validate(doc *Document) error {
	switch {
	case doc.Site == nil:
		return fmt.Errorf("missing site section")
	case len(doc.Navigation) == 0:
		return fmt.Errorf("missing navigation entries")
	case doc.Contact == nil:
		return fmt.Errorf("missing contact section")
	case doc.Blog == nil:
		return fmt.Errorf("missing blog section")
	case doc.Estimator == nil || len(doc.Estimator.Steps) == 0:
		return fmt.Errorf("missing estimator definition")
	case doc.NotFound == nil:
		return fmt.Errorf("missing notFound copy")
	}
	return nil
}

// Collection sizes are small and static, so detail lookups are a linear scan
// for the first ID match; a miss is a normal not-found branch.

// ServiceByID returns the matching service record, nil when none exists
func (s *Store) ServiceByID(id string) *content.ServiceRecord {
	for _, rec := range s.Document().Services {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// ProjectByID returns the matching project record, nil when none exists
func (s *Store) ProjectByID(id string) *content.ProjectRecord {
	for _, rec := range s.Document().Projects {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// DemoProjectByID returns the matching demo project record, nil when none exists
func (s *Store) DemoProjectByID(id string) *content.DemoProjectRecord {
	for _, rec := range s.Document().DemoProjects {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// BlogPostByID returns the matching blog post, nil when none exists
func (s *Store) BlogPostByID(id string) *content.BlogPost {
	for _, rec := range s.Document().Blog.Posts {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// Map builds the compact route map for the navigation shell: one entry per
// static page plus one per detail-routable record.
func (s *Store) Map() []*content.MapEntry {
	doc := s.Document()

	entries := make([]*content.MapEntry, 0, len(doc.Navigation)+len(doc.Services)+len(doc.Projects)+len(doc.DemoProjects)+len(doc.Blog.Posts))
	for _, nav := range doc.Navigation {
		entries = append(entries, &content.MapEntry{Path: nav.Path, Title: nav.Label, Kind: "page"})
	}
	for _, rec := range doc.Services {
		entries = append(entries, &content.MapEntry{Path: "/services/" + rec.ID, Title: rec.Title, Kind: "service"})
	}
	for _, rec := range doc.Projects {
		entries = append(entries, &content.MapEntry{Path: "/work/" + rec.ID, Title: rec.Title, Kind: "project"})
	}
	for _, rec := range doc.DemoProjects {
		entries = append(entries, &content.MapEntry{Path: "/demo-projects/" + rec.ID, Title: rec.Title, Kind: "demo-project"})
	}
	for _, rec := range doc.Blog.Posts {
		entries = append(entries, &content.MapEntry{Path: "/blog/" + rec.ID, Title: rec.Title, Kind: "post"})
	}
	return entries
}
