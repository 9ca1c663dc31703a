package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Accepted price range. Values outside it are treated as false positives
// (SKUs, zip codes, years) and the next pattern is tried.
const (
	minValidPrice = 1
	maxValidPrice = 100000
)

// pricePatterns are tried in order; each captures the numeric portion.
// The strict Brazilian thousands format comes first so "R$ 1.234,56" is
// not mangled by the looser catch-all.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`R\$\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
	regexp.MustCompile(`(?i)R\$\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)"price"[:\s]*([\d.]+)`),
	regexp.MustCompile(`(?i)"amount"[:\s]*([\d.]+)`),
	regexp.MustCompile(`(?i)(?:preço|price|valor)[:\s]*R?\$?\s*([\d.,]+)`),
}

// ExtractPrice scans free text (HTML, markdown, embedded JSON) for a price.
// The first pattern whose first match parses into the accepted range wins;
// a match that fails validation moves on to the next pattern. Returns 0
// when no pattern yields a valid value.
func ExtractPrice(text string) float64 {
	for _, pattern := range pricePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(normalizePriceString(m[1]), 64)
		if err != nil {
			continue
		}
		if value > minValidPrice && value < maxValidPrice {
			return value
		}
	}
	return 0
}

// normalizePriceString converts Brazilian formatting to a parseable float.
// Dots are thousands separators only when a decimal comma is present;
// otherwise the value is already dot-decimal ("price": 99.9) and is left
// alone.
func normalizePriceString(s string) string {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}
