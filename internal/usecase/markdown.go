package usecase

import (
	"regexp"
	"strings"
)

var (
	markdownHeadingRegex = regexp.MustCompile(`(?m)^#{1,3}\s+(.+)$`)
	markdownImageRegex   = regexp.MustCompile(`(?i)!\[.*?\]\((https?://[^\s)]+(?:\.jpg|\.jpeg|\.png|\.webp)[^\s)]*)\)`)
	markdownAnyImgRegex  = regexp.MustCompile(`!\[.*?\]\((https?://[^\s)]+)\)`)
)

// loginTitleTerms mark a page title as an authentication wall rather than
// product content. Mixed Portuguese/English because the retailers are
// Brazilian but several render English shells.
var loginTitleTerms = []string{"login", "faça login", "sign in", "entrar"}

// IsLoginTitle reports whether a title belongs to a login wall.
func IsLoginTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, term := range loginTitleTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// TitleFromMarkdown returns the first h1-h3 heading that looks like a real
// product name: longer than 5 characters and not a login-wall title.
func TitleFromMarkdown(markdown string) string {
	m := markdownHeadingRegex.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	title := strings.TrimSpace(m[1])
	if len(title) > 5 && !IsLoginTitle(title) {
		return title
	}
	return ""
}

// ImageFromMarkdown returns the first markdown image reference with a real
// image extension, falling back to any image that does not look like an
// icon, logo or avatar.
func ImageFromMarkdown(markdown string) string {
	if m := markdownImageRegex.FindStringSubmatch(markdown); m != nil {
		return m[1]
	}
	m := markdownAnyImgRegex.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	img := m[1]
	if strings.Contains(img, "icon") || strings.Contains(img, "logo") || strings.Contains(img, "avatar") {
		return ""
	}
	return img
}
