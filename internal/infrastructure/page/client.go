package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hilinkr/backend/internal/domain"
)

// Fetcher retrieves raw page HTML with a plain GET, no JS execution. It is
// the fallback when Firecrawl is unconfigured or failed.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

// NewFetcher creates a new direct page fetcher.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Fetch GETs the URL following redirects and returns the body together with
// the final resolved URL. A non-2xx status is not an error: login walls and
// bot blocks often still carry usable meta tags, so whatever body came back
// is handed to extraction anyway.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.FetchedPage, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailure, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrFetchFailure, err)
	}

	return &domain.FetchedPage{
		Body:     string(body),
		FinalURL: resp.Request.URL.String(),
	}, nil
}
