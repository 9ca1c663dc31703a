package domain

import "errors"

var (
	// ErrMissingURL is returned when a scrape request has no URL
	ErrMissingURL = errors.New("URL is required")

	// ErrInvalidURL is returned when the supplied URL cannot be parsed
	ErrInvalidURL = errors.New("invalid URL")

	// ErrScraperFailure is returned when the content-fetching collaborator
	// reports a non-success response or a transport error
	ErrScraperFailure = errors.New("content scraper request failed")

	// ErrFetchFailure is returned when the direct page fetch fails
	ErrFetchFailure = errors.New("page fetch failed")
)
