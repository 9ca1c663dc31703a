package usecase

import (
	"context"
	"log"

	"github.com/hilinkr/backend/internal/domain"
	"github.com/hilinkr/backend/internal/infrastructure/page"
)

// ScrapeService extracts product metadata from an arbitrary retailer URL.
// Flow: normalize URL -> compute URL-derived seeds -> Firecrawl (when
// configured) -> direct fetch fallback. Missing fields come back nil, never
// as an error; the dashboard just leaves those inputs for manual entry.
type ScrapeService struct {
	scraper domain.ContentScraper // nil when no Firecrawl credential is configured
	fetcher domain.PageFetcher
}

// NewScrapeService creates a new scrape service. A nil scraper is valid and
// means the structured-extraction stage is skipped entirely.
func NewScrapeService(scraper domain.ContentScraper, fetcher domain.PageFetcher) *ScrapeService {
	return &ScrapeService{
		scraper: scraper,
		fetcher: fetcher,
	}
}

// Extract runs the pipeline for one product URL. It always produces a
// result; the worst case is all fields nil except a platform or title
// recovered from the URL itself.
func (s *ScrapeService) Extract(ctx context.Context, rawURL string) *domain.ProductMetadata {
	formattedURL := NormalizeURL(rawURL)
	log.Printf("[SCRAPE] Scraping: %s", formattedURL)

	// Cheap, local, and always useful as fallback seeds.
	platform := IdentifyPlatform(formattedURL)
	urlName := ExtractNameFromURL(formattedURL)

	if s.scraper != nil {
		content, err := s.scraper.Scrape(ctx, formattedURL)
		if err == nil {
			result := s.composeStructured(content, platform, urlName)
			logResult("Firecrawl", result)
			return result
		}
		log.Printf("[SCRAPE] Firecrawl failed, using direct fetch: %v", err)
	}

	result := s.composeDirect(ctx, formattedURL, platform, urlName)
	logResult("Fallback", result)
	return result
}

// composeStructured builds the result from the collaborator's metadata,
// markdown and HTML, each field with its own ordered fallback chain.
func (s *ScrapeService) composeStructured(content *domain.PageContent, platform, urlName string) *domain.ProductMetadata {
	title := firstValid(isUsableTitle,
		func() string { return content.Title },
		func() string { return TitleFromMarkdown(content.Markdown) },
		func() string { return urlName },
	)

	image := firstValid(nonEmpty,
		func() string { return content.Image },
		func() string { return ImageFromMarkdown(content.Markdown) },
	)

	// The resolved URL (post-redirects) identifies the platform more
	// reliably than whatever the user pasted.
	detected := firstValid(nonEmpty,
		func() string { return IdentifyPlatform(content.SourceURL) },
		func() string { return platform },
	)

	// HTML first: structured markup carries the price more reliably.
	price := ExtractPrice(content.HTML)
	if price == 0 {
		price = ExtractPrice(content.Markdown)
	}

	return buildMetadata(title, image, detected, price)
}

// composeDirect fetches the raw HTML (no JS execution) and applies meta-tag
// heuristics. Fetch failures degrade to the URL-derived seeds.
func (s *ScrapeService) composeDirect(ctx context.Context, formattedURL, platform, urlName string) *domain.ProductMetadata {
	fetched, err := s.fetcher.Fetch(ctx, formattedURL)
	if err != nil {
		log.Printf("[SCRAPE] Direct fetch failed: %v", err)
		fetched = &domain.FetchedPage{FinalURL: formattedURL}
	}

	meta := page.ParseMeta(fetched.Body)

	title := firstValid(isUsableTitle,
		func() string { return meta.OGTitle },
		func() string { return meta.TwitterTitle },
		func() string { return meta.Title },
		func() string { return urlName },
	)

	image := firstValid(nonEmpty,
		func() string { return meta.OGImage },
		func() string { return meta.TwitterImage },
	)

	detected := firstValid(nonEmpty,
		func() string { return IdentifyPlatform(fetched.FinalURL) },
		func() string { return platform },
	)

	return buildMetadata(title, image, detected, ExtractPrice(fetched.Body))
}

// firstValid evaluates candidate sources in order and returns the first
// value the predicate accepts, keeping per-field fallback policies flat
// instead of nested.
func firstValid(valid func(string) bool, candidates ...func() string) string {
	for _, candidate := range candidates {
		if v := candidate(); valid(v) {
			return v
		}
	}
	return ""
}

func nonEmpty(s string) bool { return s != "" }

func isUsableTitle(s string) bool { return s != "" && !IsLoginTitle(s) }

// buildMetadata converts zero values into the nil fields of the response
// contract.
func buildMetadata(title, image, platform string, price float64) *domain.ProductMetadata {
	result := &domain.ProductMetadata{}
	if title != "" {
		result.Title = &title
	}
	if image != "" {
		result.Image = &image
	}
	if platform != "" {
		result.Platform = &platform
	}
	if price != 0 {
		result.Price = &price
	}
	return result
}

// logResult mirrors the dashboard-facing shape without dumping whole
// payloads into the logs.
func logResult(stage string, m *domain.ProductMetadata) {
	title := "none"
	if m.Title != nil {
		title = *m.Title
		if len(title) > 50 {
			title = title[:50]
		}
	}
	image := "none"
	if m.Image != nil {
		image = "found"
	}
	platform := "none"
	if m.Platform != nil {
		platform = *m.Platform
	}
	price := 0.0
	if m.Price != nil {
		price = *m.Price
	}
	log.Printf("[SCRAPE] %s result: title=%q image=%s platform=%s price=%.2f", stage, title, image, platform, price)
}
