package parser

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

var (
	// sectionMarkerPattern locates "Section <N>" markers in flattened page
	// text; each provision runs from its marker to the next one or the end.
	sectionMarkerPattern = regexp.MustCompile(`Section\s+(\d+[A-Za-z]?)\b\s*[.:—-]?\s*`)

	leadingNumberPattern = regexp.MustCompile(`^(\d+[A-Za-z]?)\.\s`)
)

// parseRegexFallback is the last-resort strategy: a plain-text sweep over
// the whole page with no structural assumptions at all. Each span's first
// line or sentence becomes the title, the remainder the content.
func parseRegexFallback(root *html.Node) []domain.Provision {
	text := nodeText(root)
	if text == "" {
		return nil
	}

	markers := sectionMarkerPattern.FindAllStringSubmatchIndex(text, -1)
	var provisions []domain.Provision
	for i, m := range markers {
		number := text[m[2]:m[3]]

		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		span := strings.TrimSpace(text[m[1]:end])
		if span == "" {
			continue
		}

		title, content := splitTitle(span)
		provisions = append(provisions, domain.Provision{
			Ref:     "s" + number,
			Section: number,
			Title:   title,
			Content: content,
		})
	}

	return provisions
}

// splitTitle takes the first line, or failing that the first sentence, as
// the title. A span with no such break is all content.
func splitTitle(span string) (title, content string) {
	if i := strings.IndexByte(span, '\n'); i > 0 {
		return strings.TrimSpace(span[:i]), strings.TrimSpace(span[i+1:])
	}
	if i := strings.Index(span, ". "); i > 0 && i < 120 {
		return strings.TrimSpace(span[:i]), strings.TrimSpace(span[i+2:])
	}
	return "", span
}
