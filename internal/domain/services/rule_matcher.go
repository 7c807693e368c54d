// Package services provides domain services: the assistant's local
// rule-based responder.
package services

import (
	"fmt"
	"strings"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/content"
)

// RuleMatcher produces canned assistant replies from keyword groups matched
// against the user message. The group order is significant: the first group
// with a hit wins, so the same message always lands in the same category.
type RuleMatcher struct {
	site *content.SiteConfig
}

// NewRuleMatcher creates a matcher that interpolates live site-config values
func NewRuleMatcher(site *content.SiteConfig) *RuleMatcher {
	return &RuleMatcher{site: site}
}

// ruleGroup couples a keyword list with its reply template
type ruleGroup struct {
	name     string
	keywords []string
	reply    func(site *content.SiteConfig) string
}

// groups are checked in order; first match short-circuits.
var groups = []ruleGroup{
	{
		name:     "pricing",
		keywords: []string{"price", "pricing", "cost", "how much", "budget", "quote", "rate"},
		reply: func(site *content.SiteConfig) string {
			return fmt.Sprintf("Project pricing depends on scope; most engagements with %s start from our published tiers on the pricing page. Try the cost estimator for a ballpark figure, or write to %s for a tailored quote.", site.Name, site.Email)
		},
	},
	{
		name:     "contact",
		keywords: []string{"contact", "email", "e-mail", "reach", "write to"},
		reply: func(site *content.SiteConfig) string {
			return fmt.Sprintf("You can reach the team any time at %s and we usually reply within one business day.", site.Email)
		},
	},
	{
		name:     "phone",
		keywords: []string{"phone", "call", "number", "ring"},
		reply: func(site *content.SiteConfig) string {
			return fmt.Sprintf("Happy to talk it through! Call us on %s during business hours.", site.Phone)
		},
	},
	{
		name:     "services",
		keywords: []string{"service", "services", "offer", "design", "develop", "website", "app", "branding", "marketing"},
		reply: func(site *content.SiteConfig) string {
			return fmt.Sprintf("%s covers the full product cycle: web and app development, design and branding, and growth marketing. The services page has the details for each offering.", site.Name)
		},
	},
	{
		name:     "location",
		keywords: []string{"location", "address", "where", "office", "visit"},
		reply: func(site *content.SiteConfig) string {
			return fmt.Sprintf("You'll find our studio at %s. Drop by, the coffee is on us.", site.Address)
		},
	},
}

// Reply returns the canned response for a user message. Matching is
// case-insensitive substring over the ordered keyword groups; no hit yields
// the generic forwarded-to-team reply.
func (m *RuleMatcher) Reply(message string) string {
	_, reply := m.Match(message)
	return reply
}

// Match returns the winning category name alongside the reply text
func (m *RuleMatcher) Match(message string) (string, string) {
	lowered := strings.ToLower(message)

	for _, group := range groups {
		for _, keyword := range group.keywords {
			if strings.Contains(lowered, keyword) {
				return group.name, group.reply(m.site)
			}
		}
	}

	return "fallback", fmt.Sprintf("Thanks for the message! I've forwarded it to the %s team and someone will get back to you at the earliest.", m.site.Name)
}
