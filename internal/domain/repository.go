package domain

import "context"

// ContentScraper defines the interface for the hosted content-fetching
// collaborator that renders a page and returns metadata plus markdown/HTML.
// An error means the stage is skipped, never that the request fails.
type ContentScraper interface {
	Scrape(ctx context.Context, url string) (*PageContent, error)
}

// PageFetcher defines the interface for the direct-fetch fallback (plain
// HTTP GET, no JS execution).
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*FetchedPage, error)
}
