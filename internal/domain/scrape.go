package domain

// ScrapeRequest is the body posted by the dashboard when the user pastes a
// product URL into the product form
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ProductMetadata is the extracted product information returned to the
// dashboard. Every field is best-effort: nil means "not found", which the
// caller treats as "leave the form field for manual entry".
type ProductMetadata struct {
	Title    *string  `json:"title"`
	Image    *string  `json:"image"`
	Platform *string  `json:"platform"`
	Price    *float64 `json:"price"`
}

// PageContent is the rendered-page representation returned by the
// content-fetching collaborator (Firecrawl), validated at the client
// boundary so the pipeline never touches untyped metadata maps.
type PageContent struct {
	Title     string // og:title, falling back to the document title
	Image     string // og:image, falling back to the metadata image
	SourceURL string // final URL after redirects
	Markdown  string
	HTML      string
}

// FetchedPage is the result of a plain HTTP GET in the fallback path.
type FetchedPage struct {
	Body     string
	FinalURL string
}
