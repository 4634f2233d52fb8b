package parser

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// sectionIDPattern matches the sec_<N> id suffix. Ids may be scoped by
// their ancestry, e.g. chp_2__sec_5, so only the tail is anchored.
var sectionIDPattern = regexp.MustCompile(`(?:^|__)sec_(\d+[A-Za-z]?)$`)

// headingContext is the mutable part/chapter state threaded through the
// markup walk. Each part or chapter boundary overwrites its slot and the
// value applies to every subsequently encountered provision until the
// next boundary, even across unrelated intervening content.
type headingContext struct {
	part    string
	chapter string
}

// parseStructuredMarkup extracts provisions from structured section
// markup: elements whose id carries the sec_<N> suffix, with an immediate
// heading child as title and numbered subsection children as content.
func parseStructuredMarkup(root *html.Node) []domain.Provision {
	var provisions []domain.Provision
	ctx := headingContext{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			id := attr(n, "id")

			switch {
			case strings.HasPrefix(id, "part_") || hasClass(n, "akn-part"):
				ctx.part = boundaryHeading(n)
			case strings.HasPrefix(id, "chapter_") || hasClass(n, "akn-chapter"):
				ctx.chapter = boundaryHeading(n)
			}

			if m := sectionIDPattern.FindStringSubmatch(id); m != nil {
				provisions = append(provisions, sectionProvision(n, m[1], ctx))
				return // sections do not nest
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return provisions
}

// boundaryHeading derives the running-context heading for a part or
// chapter node from its first heading descendant.
func boundaryHeading(n *html.Node) string {
	if h := findFirst(n, isHeading); h != nil {
		return strings.TrimSpace(nodeText(h))
	}
	// Headless boundary: fall back to the first text line.
	text := nodeText(n)
	if i := strings.IndexByte(text, '\n'); i > 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// sectionProvision builds a provision from one sec_<N> node.
func sectionProvision(n *html.Node, number string, ctx headingContext) domain.Provision {
	p := domain.Provision{
		Ref:     "s" + number,
		Section: number,
		Part:    ctx.part,
		Chapter: ctx.chapter,
	}

	var heading *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isHeading(c) {
			heading = c
			break
		}
	}
	if heading != nil {
		p.Title = numberPrefixPattern.ReplaceAllString(strings.TrimSpace(nodeText(heading)), "")
	}

	p.Content = subsectionContent(n, heading)
	if p.Content == "" {
		// No subsection markup: whole section text minus the heading.
		text := nodeText(n)
		if heading != nil {
			text = strings.TrimSpace(strings.TrimPrefix(text, nodeText(heading)))
		}
		p.Content = text
	}

	return p
}

// subsectionContent concatenates the text of nested subsection nodes,
// each prefixed by its own numbering label when present.
func subsectionContent(section *html.Node, heading *html.Node) string {
	subs := findAll(section, func(n *html.Node) bool {
		return n != heading && hasClass(n, "akn-subsection")
	})
	if len(subs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(subs))
	for _, sub := range subs {
		label := ""
		if num := findFirst(sub, func(n *html.Node) bool { return hasClass(n, "akn-num") }); num != nil {
			label = strings.TrimSpace(nodeText(num))
		}

		text := strings.TrimSpace(nodeText(sub))
		if label != "" {
			text = strings.TrimSpace(strings.TrimPrefix(text, label))
			text = label + " " + text
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}
