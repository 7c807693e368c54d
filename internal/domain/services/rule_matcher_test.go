package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/content"
)

func testSite() *content.SiteConfig {
	return &content.SiteConfig{
		Name:    "PixelCraft",
		Email:   "hello@pixelcraft.agency",
		Phone:   "+1 (555) 014-2890",
		Address: "412 Harbor Lane, Portland",
	}
}

func TestMatcherCategories(t *testing.T) {
	m := NewRuleMatcher(testSite())

	cases := []struct {
		message  string
		category string
	}{
		{"How much does a website cost?", "pricing"},
		{"what's your pricing like", "pricing"},
		{"How can I contact you?", "contact"},
		{"can i call someone?", "phone"},
		{"What services do you offer?", "services"},
		{"where is your office?", "location"},
		{"tell me a joke", "fallback"},
	}

	for _, tc := range cases {
		category, reply := m.Match(tc.message)
		assert.Equal(t, tc.category, category, "message: %s", tc.message)
		assert.NotEmpty(t, reply)
	}
}

func TestMatcherGroupOrderWins(t *testing.T) {
	m := NewRuleMatcher(testSite())

	// "cost" (pricing) and "website" (services) both hit; pricing is
	// checked first so it wins.
	category, _ := m.Match("what does a website cost")
	assert.Equal(t, "pricing", category)
}

func TestMatcherIsCaseInsensitive(t *testing.T) {
	m := NewRuleMatcher(testSite())

	upper, _ := m.Match("WHAT IS YOUR PHONE NUMBER")
	lower, _ := m.Match("what is your phone number")
	assert.Equal(t, lower, upper)
}

func TestMatcherInterpolatesSiteValues(t *testing.T) {
	m := NewRuleMatcher(testSite())

	_, reply := m.Match("how do I reach you")
	assert.Contains(t, reply, "hello@pixelcraft.agency")

	_, reply = m.Match("can I call you")
	assert.Contains(t, reply, "+1 (555) 014-2890")

	_, reply = m.Match("where is your office")
	assert.Contains(t, reply, "412 Harbor Lane")
}

func TestMatcherIsDeterministic(t *testing.T) {
	m := NewRuleMatcher(testSite())

	first := m.Reply("how much for branding?")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Reply("how much for branding?"))
	}
}
