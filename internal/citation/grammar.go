// Package citation implements the citation grammar engine: parsing
// free-text Ghanaian statute citations into structured form and
// reformatting them to canonical styles.
//
// A citation string is classified into exactly one of six surface
// grammars, tried in a fixed priority order with first-match-wins
// semantics. The order is intentional ambiguity resolution: an id-based
// string such as "act-843-2012, s. 1" must never be captured by the
// looser trailing grammars.
package citation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// grammar pairs a surface pattern with a decoder for its capture groups.
type grammar struct {
	kind    domain.CitationKind
	pattern *regexp.Regexp
	decode  func(m []string) domain.ParsedCitation
}

// sectionRef matches the pinpoint portion of a citation, e.g. "1", "1(2)",
// "1(2)(a)", "12A(3)".
const sectionRef = `(\d+[A-Za-z]?(?:\(\w+\))*)`

// grammars are evaluated strictly in order with short-circuit.
var grammars = []grammar{
	{
		// "act-843-2012, s. 1(2)"
		kind:    domain.CitationKindID,
		pattern: regexp.MustCompile(`^act-(\d+)-(\d{4})\s*,\s*s\.?\s*` + sectionRef + `$`),
		decode: func(m []string) domain.ParsedCitation {
			return domain.ParsedCitation{
				Kind:      domain.CitationKindID,
				ActNumber: atoi(m[1]),
				Year:      atoi(m[2]),
				Section:   m[3],
			}
		},
	},
	{
		// "Section 1(2), Data Protection Act 2012 (Act 843)"
		kind:    domain.CitationKindFull,
		pattern: regexp.MustCompile(`^Section\s+` + sectionRef + `\s*,\s*(.+?)\s+(\d{4})\s*\(Act\s+(\d+)\)$`),
		decode: func(m []string) domain.ParsedCitation {
			return domain.ParsedCitation{
				Kind:      domain.CitationKindFull,
				Section:   m[1],
				Title:     m[2],
				Year:      atoi(m[3]),
				ActNumber: atoi(m[4]),
			}
		},
	},
	{
		// "Section 1(2), Data Protection Act 2012"
		kind:    domain.CitationKindFull,
		pattern: regexp.MustCompile(`^Section\s+` + sectionRef + `\s*,\s*(.+?)\s+(\d{4})$`),
		decode: func(m []string) domain.ParsedCitation {
			return domain.ParsedCitation{
				Kind:    domain.CitationKindFull,
				Section: m[1],
				Title:   m[2],
				Year:    atoi(m[3]),
			}
		},
	},
	{
		// "s. 1(2) Data Protection Act 2012". An optional comma after the
		// reference keeps the short formatting style re-parseable.
		kind:    domain.CitationKindShort,
		pattern: regexp.MustCompile(`^s\.?\s*` + sectionRef + `\s*,?\s+(.+?)\s+(\d{4})$`),
		decode: func(m []string) domain.ParsedCitation {
			return domain.ParsedCitation{
				Kind:    domain.CitationKindShort,
				Section: m[1],
				Title:   m[2],
				Year:    atoi(m[3]),
			}
		},
	},
	{
		// "Data Protection Act 2012 (Act 843), s. 1(2)"
		kind:    domain.CitationKindTrailing,
		pattern: regexp.MustCompile(`^(.+?)\s+(\d{4})\s*\(Act\s+(\d+)\)\s*,\s*s\.?\s*` + sectionRef + `$`),
		decode: func(m []string) domain.ParsedCitation {
			return domain.ParsedCitation{
				Kind:      domain.CitationKindTrailing,
				Title:     m[1],
				Year:      atoi(m[2]),
				ActNumber: atoi(m[3]),
				Section:   m[4],
			}
		},
	},
	{
		// "Data Protection Act 2012, s. 1(2)"
		kind:    domain.CitationKindTrailing,
		pattern: regexp.MustCompile(`^(.+?)\s+(\d{4})\s*,\s*s\.?\s*` + sectionRef + `$`),
		decode: func(m []string) domain.ParsedCitation {
			return domain.ParsedCitation{
				Kind:    domain.CitationKindTrailing,
				Title:   m[1],
				Year:    atoi(m[2]),
				Section: m[3],
			}
		},
	},
}

// pinpointPattern decomposes a captured section reference into section,
// subsection and paragraph, e.g. "1(2)(a)".
var pinpointPattern = regexp.MustCompile(`^(\d+[A-Za-z]?)(?:\((\w+)\))?(?:\((\w+)\))?$`)

// Parse classifies a free-text citation string. It never returns an error:
// a string matching no grammar yields Valid:false with a diagnostic
// naming the original input.
func Parse(raw string) domain.ParsedCitation {
	s := strings.TrimSpace(raw)
	if s == "" {
		return invalid("empty citation string")
	}

	for _, g := range grammars {
		m := g.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		c := g.decode(m)
		c.Valid = true
		decomposeSection(&c)
		return c
	}

	return invalid(fmt.Sprintf("unrecognised citation format: %q", raw))
}

// decomposeSection splits the raw section reference into its parts. When
// the pinpoint grammar itself fails the raw string is kept as Section and
// the outer parse still succeeds.
func decomposeSection(c *domain.ParsedCitation) {
	m := pinpointPattern.FindStringSubmatch(c.Section)
	if m == nil {
		return
	}
	c.Section = m[1]
	c.Subsection = m[2]
	c.Paragraph = m[3]
}

// Format renders a parsed citation in the requested style. Formatting an
// invalid or section-less citation yields an empty string.
func Format(c domain.ParsedCitation, style domain.CitationStyle) string {
	if !c.Valid || c.Section == "" {
		return ""
	}

	pin := c.Pinpoint()
	switch style {
	case domain.StyleFull:
		if c.ActNumber > 0 {
			return fmt.Sprintf("Section %s, %s %d (Act %d)", pin, c.Title, c.Year, c.ActNumber)
		}
		return fmt.Sprintf("Section %s, %s %d", pin, c.Title, c.Year)
	case domain.StyleShort:
		return fmt.Sprintf("s. %s, %s %d", pin, c.Title, c.Year)
	case domain.StylePinpoint:
		return fmt.Sprintf("s. %s", pin)
	default:
		return ""
	}
}

func invalid(msg string) domain.ParsedCitation {
	return domain.ParsedCitation{Valid: false, Err: msg}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
