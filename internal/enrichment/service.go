package enrichment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/platform/logger"
)

const (
	cacheTTL = 24 * time.Hour

	maxServices          = 5
	maxDescriptionLength = 240
)

var dayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", "mon-", "mon to", "weekdays"}

type cacheEntry struct {
	profile   ports.BusinessProfile
	expiresAt time.Time
}

// Service turns an advertiser website into a business profile, with a
// per-website cache so repeated searches do not refetch the same page.
// When allowedDomains is non-empty, only those hosts are ever fetched.
type Service struct {
	client         *Client
	log            *logger.Logger
	allowedDomains []string
	cache          map[string]cacheEntry
	cacheMu        sync.RWMutex
}

func New(client *Client, log *logger.Logger, allowedDomains []string) *Service {
	return &Service{
		client:         client,
		log:            log,
		allowedDomains: allowedDomains,
		cache:          make(map[string]cacheEntry),
	}
}

// EnrichBusinessProfile fetches the advertiser's site and distils a profile.
func (s *Service) EnrichBusinessProfile(ctx context.Context, companyName, website string) (ports.BusinessProfile, error) {
	if !s.domainAllowed(website) {
		return ports.BusinessProfile{}, fmt.Errorf("domain not on enrichment allow list: %s", website)
	}
	if cached, ok := s.fromCache(website); ok {
		return cached, nil
	}

	page, err := s.client.FetchPage(ctx, website)
	if err != nil {
		return ports.BusinessProfile{}, err
	}

	profile := buildProfile(companyName, page)
	s.store(website, profile)
	return profile, nil
}

func (s *Service) domainAllowed(website string) bool {
	if len(s.allowedDomains) == 0 {
		return true
	}
	parsed, err := url.Parse(website)
	if err != nil || parsed.Hostname() == "" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	for _, domain := range s.allowedDomains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain == "" {
			continue
		}
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func (s *Service) fromCache(website string) (ports.BusinessProfile, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	entry, ok := s.cache[website]
	if !ok || time.Now().After(entry.expiresAt) {
		return ports.BusinessProfile{}, false
	}
	return entry.profile, true
}

func (s *Service) store(website string, profile ports.BusinessProfile) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cache[website] = cacheEntry{profile: profile, expiresAt: time.Now().Add(cacheTTL)}
}

// buildProfile distils page content: the meta description (or first decent
// paragraph) becomes the description, short list items become services, and
// any line mentioning a weekday becomes the opening hours.
func buildProfile(companyName string, page *pageContent) ports.BusinessProfile {
	profile := ports.BusinessProfile{
		Description: pickDescription(page),
	}

	for _, item := range page.ListItems {
		if len(profile.Services) >= maxServices {
			break
		}
		if looksLikeService(item) {
			profile.Services = append(profile.Services, item)
		}
	}

	profile.OpeningHours = pickOpeningHours(page)

	if profile.Description == "" && page.Title != "" && !strings.EqualFold(page.Title, companyName) {
		profile.Description = page.Title
	}

	return profile
}

func pickDescription(page *pageContent) string {
	if page.MetaDescription != "" {
		return truncate(page.MetaDescription, maxDescriptionLength)
	}
	for _, paragraph := range page.Paragraphs {
		// Skip cookie banners and one-word fragments.
		if len(paragraph) < 40 || strings.Contains(strings.ToLower(paragraph), "cookie") {
			continue
		}
		return truncate(paragraph, maxDescriptionLength)
	}
	return ""
}

func pickOpeningHours(page *pageContent) string {
	lines := make([]string, 0, len(page.Paragraphs)+len(page.ListItems))
	lines = append(lines, page.Paragraphs...)
	lines = append(lines, page.ListItems...)

	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, day := range dayNames {
			if strings.Contains(lower, day) && len(line) <= 80 {
				return line
			}
		}
	}
	return ""
}

// looksLikeService filters navigation items out of service lists: a service
// line is short and does not look like a link label or legal boilerplate.
func looksLikeService(item string) bool {
	if len(item) < 4 || len(item) > 60 {
		return false
	}
	lower := strings.ToLower(item)
	for _, skip := range []string{"home", "about", "contact", "privacy", "terms", "login", "cookie"} {
		if lower == skip || strings.HasPrefix(lower, skip+" ") {
			return false
		}
	}
	return true
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := strings.LastIndex(text[:limit], " ")
	if cut <= 0 {
		cut = limit
	}
	return text[:cut] + "…"
}

var _ ports.ProfileEnricher = (*Service)(nil)
