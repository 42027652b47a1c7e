package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText converts an HTML résumé into plain text. Script, style
// and navigation chrome are removed; block elements become line breaks so
// CleanText can rebuild paragraph structure afterwards.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}

	var sb strings.Builder
	body.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		// Force a break after block elements so sibling sections don't
		// run together in the text output.
		s.AppendHtml("\n")
	})

	sb.WriteString(body.Text())
	return sb.String(), nil
}
