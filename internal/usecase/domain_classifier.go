package usecase

import (
	"fmt"
	"strings"

	"github.com/robridge/scanner/internal/domain"
)

// profileEntry pairs a domain substring trigger with its fixed profile.
// Entries are evaluated top to bottom; first match wins.
type profileEntry struct {
	matches []string
	profile domain.DomainProfile
}

// DomainClassifier matches a QR code URL against a curated table of known
// platforms. No external lookup is performed for URL codes; classification
// is static-template-based. Unmatched domains get a generic Website profile.
type DomainClassifier struct {
	profiles []profileEntry
}

// NewDomainClassifier creates a domain classifier with the default profile table
func NewDomainClassifier() *DomainClassifier {
	return &DomainClassifier{profiles: defaultProfiles()}
}

// Classify extracts the registrable domain from the URL and returns the
// matching platform profile, or a generic Website profile when nothing matches.
func (c *DomainClassifier) Classify(url string) (string, domain.DomainProfile) {
	host := ExtractDomain(url)
	hostLower := strings.ToLower(host)

	for _, entry := range c.profiles {
		for _, m := range entry.matches {
			if strings.Contains(hostLower, m) {
				return host, entry.profile
			}
		}
	}

	return host, genericProfile(host)
}

// genericProfile synthesizes a profile for a domain not in the curated table
func genericProfile(host string) domain.DomainProfile {
	return domain.DomainProfile{
		Title:    fmt.Sprintf("Website: %s", host),
		Category: "Website",
		Description: fmt.Sprintf("This QR code contains a web link to %s. "+
			"QR codes are two-dimensional barcodes that store information and can be quickly scanned using smartphone cameras. "+
			"This particular code directs to a website where you can access information, services, or content. "+
			"The specific purpose depends on the website owner's intent - it could be for marketing, information sharing, authentication, payment, or accessing digital resources. "+
			"Always verify the source before scanning QR codes from unknown origins.", host),
	}
}

// defaultProfiles returns the curated platform table in priority order
func defaultProfiles() []profileEntry {
	return []profileEntry{
		{
			matches: []string{"rajalakshmi"},
			profile: domain.DomainProfile{
				Title:    "Rajalakshmi Educational Institution",
				Category: "Educational Institution",
				Description: "This QR code directs to Rajalakshmi Educational Institution's official portal. " +
					"The institution is a prominent engineering and educational establishment. " +
					"This specific URL appears to be part of their student registration or identification system, likely used for student verification, attendance tracking, or accessing academic resources. " +
					"The encrypted registration number in the URL ensures secure access to personalized student information and services.",
			},
		},
		{
			matches: []string{"google"},
			profile: domain.DomainProfile{
				Title:    "Google Services",
				Category: "Technology Platform",
				Description: "This QR code connects to Google's ecosystem of services. " +
					"Google is the world's leading technology company offering search, cloud computing, productivity tools, and digital services. " +
					"This link may provide access to Google Drive, Gmail, Google Meet, Google Docs, or other collaborative and productivity applications. " +
					"Users can access documents, join meetings, or utilize various Google workspace features through this link.",
			},
		},
		{
			matches: []string{"facebook"},
			profile: domain.DomainProfile{
				Title:    "Facebook",
				Category: "Social Media Platform",
				Description: "This QR code links to Facebook, the world's largest social networking platform with billions of active users. " +
					"It may direct to a personal profile, business page, group, event, or specific post. " +
					"Facebook enables users to connect with friends and family, share content, join communities, and engage with businesses. " +
					"Scanning this code provides quick access to Facebook content without manual searching.",
			},
		},
		{
			matches: []string{"youtube"},
			profile: domain.DomainProfile{
				Title:    "YouTube",
				Category: "Video Streaming Platform",
				Description: "This QR code connects to YouTube, the world's premier video sharing and streaming platform owned by Google. " +
					"It may link to a specific video, channel, playlist, or live stream. " +
					"YouTube hosts billions of videos covering entertainment, education, tutorials, music, news, and more. " +
					"This QR code provides instant access to video content without typing or searching, making it ideal for sharing multimedia content.",
			},
		},
		{
			matches: []string{"instagram"},
			profile: domain.DomainProfile{
				Title:    "Instagram",
				Category: "Social Media Platform",
				Description: "This QR code links to Instagram, a popular photo and video sharing social media platform owned by Meta. " +
					"It may direct to a user profile, specific post, story, reel, or IGTV content. " +
					"Instagram is widely used for visual storytelling, brand marketing, influencer content, and personal expression through images and short videos. " +
					"Scanning provides immediate access to Instagram content and profiles.",
			},
		},
		{
			matches: []string{"twitter", "x.com"},
			profile: domain.DomainProfile{
				Title:    "Twitter/X",
				Category: "Social Media Platform",
				Description: "This QR code links to Twitter (now rebranded as X), a microblogging and social networking platform. " +
					"It may direct to a user profile, specific tweet, thread, or trending topic. " +
					"Twitter/X is known for real-time news, public conversations, and short-form content limited to character counts. " +
					"The platform is widely used for breaking news, public discourse, brand communication, and connecting with thought leaders and communities.",
			},
		},
		{
			matches: []string{"linkedin"},
			profile: domain.DomainProfile{
				Title:    "LinkedIn",
				Category: "Professional Network",
				Description: "This QR code connects to LinkedIn, the world's largest professional networking platform. " +
					"It may link to a professional profile, company page, job posting, or article. " +
					"LinkedIn is used for career development, professional networking, job searching, business connections, and industry insights. " +
					"This QR code enables quick professional connections and access to career-related content.",
			},
		},
		{
			matches: []string{"whatsapp"},
			profile: domain.DomainProfile{
				Title:    "WhatsApp",
				Category: "Messaging Platform",
				Description: "This QR code links to WhatsApp, a widely-used encrypted messaging application owned by Meta. " +
					"It may connect to a personal chat, business account, group, or WhatsApp Web session. " +
					"WhatsApp enables instant messaging, voice and video calls, file sharing, and business communication. " +
					"Scanning this code can initiate conversations or join groups without manually adding contacts.",
			},
		},
		{
			matches: []string{"github"},
			profile: domain.DomainProfile{
				Title:    "GitHub",
				Category: "Developer Platform",
				Description: "This QR code links to GitHub, the world's leading platform for software development and version control. " +
					"It may direct to a code repository, developer profile, project, or open-source contribution. " +
					"GitHub is essential for collaborative coding, project management, code review, and software distribution. " +
					"This link provides access to source code, documentation, and development resources.",
			},
		},
		{
			matches: []string{"amazon"},
			profile: domain.DomainProfile{
				Title:    "Amazon",
				Category: "E-Commerce Platform",
				Description: "This QR code connects to Amazon, the world's largest online marketplace and e-commerce platform. " +
					"It may link to a product listing, store page, deal, or Amazon service. " +
					"Amazon offers millions of products across categories including electronics, books, clothing, groceries, and digital services. " +
					"Scanning provides quick access to products, reviews, and purchasing options.",
			},
		},
		{
			matches: []string{"me-qr", "qr-code"},
			profile: domain.DomainProfile{
				Title:    "QR Code Service",
				Category: "QR Code Generator",
				Description: "This QR code was created using a QR code generation service. " +
					"These platforms allow users to create custom QR codes that can link to websites, contact information, WiFi credentials, or other digital content. " +
					"The destination of this code depends on what the creator configured. " +
					"QR code services are commonly used for marketing, event management, contactless information sharing, and digital business cards.",
			},
		},
	}
}
