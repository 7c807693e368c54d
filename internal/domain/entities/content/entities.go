// Package content defines the application's core content-related domain entities.
// Every record that backs a detail route carries a stable ID used for lookup.
package content

// SiteConfig holds site-wide identity and contact details
type SiteConfig struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	LogoPath    string `json:"logoPath,omitempty"`
}

// NavigationEntry is a single header/footer navigation link
type NavigationEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Hero holds the home page hero copy
type Hero struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	CTALabel string   `json:"ctaLabel"`
	CTAPath  string   `json:"ctaPath"`
	Keywords []string `json:"keywords,omitempty"`
}

// Stat is a single headline company statistic
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ServiceRecord describes one offered service, detail-routable by ID
type ServiceRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon,omitempty"`
	Deliverables  []string `json:"deliverables,omitempty"`
	StartingPrice int      `json:"startingPrice,omitempty"`
}

// PricingTier is one plan within a pricing group
type PricingTier struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Period   string   `json:"period,omitempty"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular,omitempty"`
}

// Pricing groups tiers by offering category
type Pricing struct {
	Project     []*PricingTier `json:"project"`
	App         []*PricingTier `json:"app"`
	Graphics    []*PricingTier `json:"graphics"`
	Marketing   []*PricingTier `json:"marketing"`
	Maintenance []*PricingTier `json:"maintenance"`
}

// ProjectRecord is a portfolio entry, detail-routable by ID
type ProjectRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Client      string   `json:"client,omitempty"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	ImagePath   string   `json:"imagePath,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Year        int      `json:"year,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// DemoProjectRecord is a showcase/demo entry, detail-routable by ID
type DemoProjectRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	ImagePath   string   `json:"imagePath,omitempty"`
	DemoURL     string   `json:"demoUrl,omitempty"`
	Stack       []string `json:"stack,omitempty"`
}

// BlogPost is a blog entry, detail-routable by ID
type BlogPost struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Date      string   `json:"date"`
	Excerpt   string   `json:"excerpt"`
	Body      string   `json:"body"`
	ImagePath string   `json:"imagePath,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Blog wraps the posts collection
type Blog struct {
	Posts []*BlogPost `json:"posts"`
}

// TeamMember is one person on the about page
type TeamMember struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
}

// TimelineEntry is one milestone on the about page
type TimelineEntry struct {
	Year  string `json:"year"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// GalleryImage is one image in the gallery grid
type GalleryImage struct {
	Path    string `json:"path"`
	Caption string `json:"caption,omitempty"`
}

// FAQEntry is a question/answer pair
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CareerOpening is one open position on the careers page
type CareerOpening struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Type     string   `json:"type"`
	Summary  string   `json:"summary"`
	Skills   []string `json:"skills,omitempty"`
}

// ContactInfo holds the contact page copy and form options
type ContactInfo struct {
	Heading        string   `json:"heading"`
	Text           string   `json:"text"`
	ServiceOptions []string `json:"serviceOptions"`
	BudgetOptions  []string `json:"budgetOptions"`
	MapEmbedURL    string   `json:"mapEmbedUrl,omitempty"`
}

// FooterConfig holds footer copy and link columns
type FooterConfig struct {
	Text    string             `json:"text"`
	Social  []*NavigationEntry `json:"social,omitempty"`
	Columns []*FooterColumn    `json:"columns,omitempty"`
}

// FooterColumn is one titled group of footer links
type FooterColumn struct {
	Title string             `json:"title"`
	Links []*NavigationEntry `json:"links"`
}

// NotFoundCopy is the 404 view copy with a path back
type NotFoundCopy struct {
	Heading   string `json:"heading"`
	Text      string `json:"text"`
	BackLabel string `json:"backLabel"`
	BackPath  string `json:"backPath"`
}

// MapEntry is one row of the compact route map consumed by the navigation shell
type MapEntry struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
}
