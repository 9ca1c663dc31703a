package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Meta holds the document metadata the fallback extractor cares about.
type Meta struct {
	OGTitle      string
	TwitterTitle string
	Title        string
	OGImage      string
	TwitterImage string
}

// ParseMeta scans an HTML document for OpenGraph/Twitter meta tags and the
// <title> element. Retailers are inconsistent about property= vs name= on
// meta tags, so both are accepted. Unparseable input yields an empty Meta.
func ParseMeta(html string) Meta {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Meta{}
	}

	return Meta{
		OGTitle:      metaContent(doc, "og:title"),
		TwitterTitle: metaContent(doc, "twitter:title"),
		Title:        strings.TrimSpace(doc.Find("title").First().Text()),
		OGImage:      metaContent(doc, "og:image"),
		TwitterImage: metaContent(doc, "twitter:image"),
	}
}

// metaContent returns the content attribute of the first meta tag whose
// property or name matches.
func metaContent(doc *goquery.Document, property string) string {
	selector := `meta[property="` + property + `"], meta[name="` + property + `"]`
	if content, ok := doc.Find(selector).First().Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}
