package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hilinkr/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client calls the Firecrawl scrape API, which renders a page (including
// client-side JS) and returns metadata plus markdown/HTML representations.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	waitFor     int // ms Firecrawl waits for client-side rendering to settle
	rateLimiter *rate.Limiter
}

// NewClient creates a new Firecrawl API client. The hobby plan allows
// roughly one scrape per second, so requests are paced accordingly.
func NewClient(apiKey, baseURL string, waitFor int, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		waitFor:     waitFor,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
	WaitFor         int      `json:"waitFor"`
}

// scrapeMetadata names the handful of metadata keys the pipeline consumes,
// so downstream code never touches the untyped bag Firecrawl returns.
type scrapeMetadata struct {
	Title     string `json:"title"`
	OGTitle   string `json:"og:title"`
	Image     string `json:"image"`
	OGImage   string `json:"og:image"`
	SourceURL string `json:"sourceURL"`
}

type scrapePayload struct {
	Metadata scrapeMetadata `json:"metadata"`
	Markdown string         `json:"markdown"`
	HTML     string         `json:"html"`
}

type scrapeResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error"`
	Data    scrapePayload `json:"data"`
}

// Scrape fetches the rendered content of a product page. Price and title
// widgets are often outside the main content region, so the full page is
// requested. Any failure is returned as ErrScraperFailure for the caller to
// fall through on; there are no retries.
func (c *Client) Scrape(ctx context.Context, url string) (*domain.PageContent, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	payload, err := json.Marshal(scrapeRequest{
		URL:             url,
		Formats:         []string{"markdown", "html"},
		OnlyMainContent: false,
		WaitFor:         c.waitFor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/scrape", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScraperFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrScraperFailure, err)
	}

	var scrapeResp scrapeResponse
	if err := json.Unmarshal(body, &scrapeResp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrScraperFailure, err)
	}

	if resp.StatusCode != http.StatusOK || !scrapeResp.Success {
		log.Printf("[FIRECRAWL] API error - Status: %d, Error: %s", resp.StatusCode, scrapeResp.Error)
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrScraperFailure, resp.StatusCode, scrapeResp.Error)
	}

	return mapToPageContent(&scrapeResp.Data, url), nil
}

// mapToPageContent collapses the metadata variants into the known-shape
// content the pipeline works with, defaulting the resolved URL to the
// requested one.
func mapToPageContent(data *scrapePayload, requestedURL string) *domain.PageContent {
	title := data.Metadata.OGTitle
	if title == "" {
		title = data.Metadata.Title
	}

	image := data.Metadata.OGImage
	if image == "" {
		image = data.Metadata.Image
	}

	sourceURL := data.Metadata.SourceURL
	if sourceURL == "" {
		sourceURL = requestedURL
	}

	return &domain.PageContent{
		Title:     title,
		Image:     image,
		SourceURL: sourceURL,
		Markdown:  data.Markdown,
		HTML:      data.HTML,
	}
}
