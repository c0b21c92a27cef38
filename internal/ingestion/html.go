package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LooksLikeHTML reports whether pasted input appears to be an HTML document
// rather than plain text.
func LooksLikeHTML(input string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	return strings.HasPrefix(trimmed, "<!doctype") ||
		strings.HasPrefix(trimmed, "<html") ||
		strings.Contains(trimmed, "</div>") ||
		strings.Contains(trimmed, "</p>")
}

// StripHTML parses pasted HTML and returns its visible text, one block
// element per line. Navigation, script, and other noise elements are removed
// first so the section heuristics see only posting content.
func StripHTML(input string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return CleanText(doc.Text()), nil
	}

	var sb strings.Builder
	body.Find("h1, h2, h3, h4, h5, h6, p, li, div, span").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; containers would duplicate their children.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			sb.WriteString("• ")
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text = body.Text()
	}
	return CleanText(text), nil
}
