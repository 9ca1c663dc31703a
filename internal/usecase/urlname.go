package usecase

import (
	"net/url"
	"regexp"
	"strings"
)

// minSegmentNameSize rejects short slugs and pure IDs that would make a
// meaningless product name.
const minSegmentNameSize = 10

var (
	hasLetterRegex    = regexp.MustCompile(`[a-zA-Z]`)
	shopeeSuffixRegex = regexp.MustCompile(`-i\.\d+\.\d+$`)
	segmentSplitChars = strings.NewReplacer("-", " ", "_", " ")
)

// NormalizeURL trims the input and defaults the scheme to https, since
// users routinely paste URLs copied without one.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	lower := strings.ToLower(rawURL)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "https://" + rawURL
	}
	return rawURL
}

// ExtractNameFromURL recovers a human-readable product name from the URL
// alone. Shopee-style links embed the name either in a seoName query
// parameter or in a long slug segment, both of which survive login walls
// and failed fetches. Returns "" when nothing usable is found.
func ExtractNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	if seoName := u.Query().Get("seoName"); seoName != "" {
		return strings.ReplaceAll(seoName, "-", " ")
	}

	for _, seg := range strings.Split(u.Path, "/") {
		if len(seg) <= minSegmentNameSize || !hasLetterRegex.MatchString(seg) {
			continue
		}
		cleaned := shopeeSuffixRegex.ReplaceAllString(seg, "")
		cleaned = strings.TrimSpace(segmentSplitChars.Replace(cleaned))
		if len(cleaned) > minSegmentNameSize {
			return cleaned
		}
	}
	return ""
}
