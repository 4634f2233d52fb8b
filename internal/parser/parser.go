// Package parser converts retrieved legislation pages into structured Act
// records. Pages from the publication endpoint are inconsistently marked
// up, so parsing runs three strategies of decreasing structural
// assumption: structured markup, an embedded table of contents, and a
// plain-text regex sweep. The first strategy to yield at least one
// provision wins; later strategies assume the earlier ones definitively
// failed, so they are never run in parallel.
package parser

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/logger"
)

// strategy attempts to extract provisions from a parsed page. A nil or
// empty result means the strategy found nothing and the next one runs.
type strategy func(root *html.Node) []domain.Provision

// Parser converts one retrieved page into an Act record.
type Parser struct {
	strategies []strategy
}

// New creates a document parser with the default strategy order.
func New() *Parser {
	return &Parser{
		strategies: []strategy{
			parseStructuredMarkup,
			parseTableOfContents,
			parseRegexFallback,
		},
	}
}

// Parse converts a page body into an Act. It never fails: when no
// strategy yields content the act carries zero provisions and the
// no-content status.
func (p *Parser) Parse(body string, year, actNumber int, fallbackTitle string) *domain.Act {
	act := &domain.Act{
		ID:        domain.ActID(actNumber, year),
		Title:     fallbackTitle,
		ActNumber: actNumber,
		Year:      year,
		Status:    domain.StatusInForce,
	}

	root, err := parseHTML(body)
	if err != nil {
		// html.Parse only fails on reader errors; a string reader cannot.
		logger.Warn("unparseable page for %s: %v", act.ID, err)
		act.Status = domain.StatusNoContent
		return act
	}

	if title := pageTitle(root); title != "" {
		act.Title = title
	}
	act.IssuedDate = issuedDate(root)
	act.ShortName = ShortName(act.Title, year)

	for i, s := range p.strategies {
		act.Provisions = s(root)
		if len(act.Provisions) > 0 {
			logger.Debug("parser strategy %d yielded %d provisions for %s",
				i+1, len(act.Provisions), act.ID)
			break
		}
	}

	if len(act.Provisions) == 0 {
		logger.Warn("no strategy yielded content for %s", act.ID)
		act.Status = domain.StatusNoContent
		return act
	}

	act.Definitions = ExtractDefinitions(act.Provisions)
	return act
}

var (
	numberPrefixPattern = regexp.MustCompile(`^\d+[A-Za-z]?\.\s*`)
	datePattern         = regexp.MustCompile(`\d{1,2}\s+\w+,?\s+\d{4}|\d{4}-\d{2}-\d{2}`)
)

// pageTitle finds the document title: the structured docTitle node first,
// then the first h1, then the <title> element.
func pageTitle(root *html.Node) string {
	if n := findFirst(root, func(n *html.Node) bool { return hasClass(n, "akn-docTitle") }); n != nil {
		return strings.TrimSpace(nodeText(n))
	}
	if n := findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "h1"
	}); n != nil {
		if t := strings.TrimSpace(nodeText(n)); t != "" {
			return t
		}
	}
	if n := findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "title"
	}); n != nil {
		return strings.TrimSpace(nodeText(n))
	}
	return ""
}

// issuedDate finds the assent or publication date when the page carries
// one; absent dates are left empty.
func issuedDate(root *html.Node) string {
	n := findFirst(root, func(n *html.Node) bool { return hasClass(n, "akn-docDate") })
	if n == nil {
		return ""
	}
	if d := attr(n, "date"); d != "" {
		return d
	}
	return datePattern.FindString(nodeText(n))
}
