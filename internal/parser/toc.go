package parser

import (
	"encoding/json"
	"strings"

	"golang.org/x/net/html"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// tocEntry is one node of the table-of-contents record some pages embed
// in a script tag instead of structured section markup.
type tocEntry struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Title    string     `json:"title"`
	Heading  string     `json:"heading"`
	Children []tocEntry `json:"children"`
}

// parseTableOfContents runs when structured markup yielded nothing. It
// locates an embedded JSON table of contents, walks it recursively, and
// resolves each section entry back to its DOM element for content.
func parseTableOfContents(root *html.Node) []domain.Provision {
	entries := findEmbeddedToc(root)
	if len(entries) == 0 {
		return nil
	}

	ctx := headingContext{}
	var provisions []domain.Provision
	var walk func(entries []tocEntry)
	walk = func(entries []tocEntry) {
		for _, e := range entries {
			switch e.Type {
			case "part":
				ctx.part = entryHeading(e)
			case "chapter":
				ctx.chapter = entryHeading(e)
			case "section":
				if p, ok := tocProvision(root, e, ctx); ok {
					provisions = append(provisions, p)
				}
			}
			walk(e.Children)
		}
	}
	walk(entries)

	return provisions
}

// findEmbeddedToc scans script elements for a JSON array of toc entries.
// The decoder reads one JSON value and ignores trailing script text, so
// assignments like "var toc = [...];" parse without extraction gymnastics.
func findEmbeddedToc(root *html.Node) []tocEntry {
	scripts := findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "script"
	})

	for _, script := range scripts {
		text := scriptText(script)
		start := strings.IndexByte(text, '[')
		if start < 0 || !strings.Contains(text, `"type"`) {
			continue
		}

		var entries []tocEntry
		dec := json.NewDecoder(strings.NewReader(text[start:]))
		if err := dec.Decode(&entries); err != nil || len(entries) == 0 {
			continue
		}
		if hasSectionEntry(entries) {
			return entries
		}
	}
	return nil
}

func scriptText(script *html.Node) string {
	var b strings.Builder
	for c := script.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func hasSectionEntry(entries []tocEntry) bool {
	for _, e := range entries {
		if e.Type == "section" || hasSectionEntry(e.Children) {
			return true
		}
	}
	return false
}

func entryHeading(e tocEntry) string {
	if e.Heading != "" {
		return e.Heading
	}
	return e.Title
}

// tocProvision resolves a section toc entry to its DOM element and builds
// the provision from the element text minus the heading text.
func tocProvision(root *html.Node, e tocEntry, ctx headingContext) (domain.Provision, bool) {
	number := sectionNumber(e)
	if number == "" {
		return domain.Provision{}, false
	}

	p := domain.Provision{
		Ref:     "s" + number,
		Section: number,
		Part:    ctx.part,
		Chapter: ctx.chapter,
		Title:   numberPrefixPattern.ReplaceAllString(entryHeading(e), ""),
	}

	el := byID(root, e.ID)
	if el == nil {
		return domain.Provision{}, false
	}

	text := strings.TrimSpace(nodeText(el))
	if h := entryHeading(e); h != "" {
		if idx := strings.Index(text, h); idx >= 0 {
			text = strings.TrimSpace(text[:idx] + text[idx+len(h):])
		}
	}
	text = strings.TrimSpace(numberPrefixPattern.ReplaceAllString(text, ""))
	if text == "" {
		return domain.Provision{}, false
	}
	p.Content = text

	return p, true
}

// sectionNumber derives the provision number from the entry id suffix, or
// from a numbered title as a fallback.
func sectionNumber(e tocEntry) string {
	if m := sectionIDPattern.FindStringSubmatch(e.ID); m != nil {
		return m[1]
	}
	if m := leadingNumberPattern.FindStringSubmatch(e.Title); m != nil {
		return m[1]
	}
	return ""
}
