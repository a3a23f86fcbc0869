package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDomain_KnownPlatforms(t *testing.T) {
	classifier := NewDomainClassifier()

	tests := []struct {
		name         string
		url          string
		wantTitle    string
		wantCategory string
	}{
		{"github", "https://github.com/foo/bar", "GitHub", "Developer Platform"},
		{"google", "https://docs.google.com/document/d/abc", "Google Services", "Technology Platform"},
		{"facebook", "https://facebook.com/somepage", "Facebook", "Social Media Platform"},
		{"youtube", "https://www.youtube.com/watch?v=abc", "YouTube", "Video Streaming Platform"},
		{"instagram", "https://instagram.com/someuser", "Instagram", "Social Media Platform"},
		{"twitter legacy domain", "https://twitter.com/someuser", "Twitter/X", "Social Media Platform"},
		{"x.com domain", "https://x.com/someuser", "Twitter/X", "Social Media Platform"},
		{"linkedin", "https://www.linkedin.com/in/someone", "LinkedIn", "Professional Network"},
		{"whatsapp", "https://wa.whatsapp.com/xyz", "WhatsApp", "Messaging Platform"},
		{"amazon", "https://www.amazon.com/dp/B000", "Amazon", "E-Commerce Platform"},
		{"qr service", "https://me-qr.com/abc123", "QR Code Service", "QR Code Generator"},
		{"case-insensitive domain match", "https://GitHub.com/foo", "GitHub", "Developer Platform"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, profile := classifier.Classify(tt.url)

			assert.Equal(t, tt.wantTitle, profile.Title)
			assert.Equal(t, tt.wantCategory, profile.Category)
			assert.NotEmpty(t, profile.Description)
		})
	}
}

func TestClassifyDomain_GenericFallback(t *testing.T) {
	classifier := NewDomainClassifier()

	host, profile := classifier.Classify("https://some-obscure-site.example/path")

	assert.Equal(t, "some-obscure-site.example", host)
	assert.Equal(t, "Website: some-obscure-site.example", profile.Title)
	assert.Equal(t, "Website", profile.Category)
	assert.Contains(t, profile.Description, "some-obscure-site.example")
	assert.Contains(t, profile.Description, "verify the source")
}

func TestClassifyDomain_PriorityOrder(t *testing.T) {
	classifier := NewDomainClassifier()

	// "google" appears earlier in the table than "youtube", so a domain
	// containing both resolves to Google
	_, profile := classifier.Classify("https://google-youtube.example/x")

	assert.Equal(t, "Google Services", profile.Title)
}

func TestClassifyDomain_MatchesDomainOnly(t *testing.T) {
	classifier := NewDomainClassifier()

	// Trigger substring in the path must not match; only the domain counts
	_, profile := classifier.Classify("https://example.com/github/repo")

	assert.Equal(t, "Website: example.com", profile.Title)
	assert.False(t, strings.Contains(profile.Title, "GitHub"))
}
