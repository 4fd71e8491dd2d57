package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText extracts a readable text version of a rendered resume, used as
// the email body alongside the PDF attachment. Headings and block elements
// become their own lines.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse rendered html: %w", err)
	}

	doc.Find("style, script").Remove()

	var lines []string
	doc.Find("h1, h2, h3, p, li, div").Each(func(_ int, s *goquery.Selection) {
		// Skip containers whose children will be visited on their own.
		if s.Children().Filter("h1, h2, h3, p, li, div").Length() > 0 {
			return
		}
		text := normalizeSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "h2" && len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, text)
	})

	return strings.Join(lines, "\n"), nil
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
