package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText reduces an HTML entry body to plain text for the model.
func ExtractText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return normalizeWhitespace(raw)
	}

	doc.Find("script, style").Remove()

	return normalizeWhitespace(doc.Text())
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
