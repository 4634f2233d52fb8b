package parser

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// actLinkPattern matches index-page link text of the form
// "Data Protection Act, 2012 (Act 843)".
var actLinkPattern = regexp.MustCompile(`^(.+?),?\s+(\d{4})\s*\(Act\s+(\d+)\)$`)

// ParseIndex extracts act entries from a publication index page in
// listing order. Links whose text does not carry both a year and an act
// number are skipped; entries drive fetch order only and are never
// persisted.
func ParseIndex(body, baseURL string) []domain.ActIndexEntry {
	root, err := parseHTML(body)
	if err != nil {
		return nil
	}

	base, _ := url.Parse(baseURL)

	anchors := findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a" && attr(n, "href") != ""
	})

	var entries []domain.ActIndexEntry
	for _, a := range anchors {
		text := strings.TrimSpace(nodeText(a))
		m := actLinkPattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		year, _ := strconv.Atoi(m[2])
		number, _ := strconv.Atoi(m[3])

		entries = append(entries, domain.ActIndexEntry{
			Title:     strings.TrimSpace(m[1]) + ", " + m[2] + " (Act " + m[3] + ")",
			Year:      year,
			ActNumber: number,
			SourceURL: resolveURL(base, attr(a, "href")),
		})
	}

	return entries
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
