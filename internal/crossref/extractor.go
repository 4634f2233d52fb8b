// Package crossref detects references to foreign and international legal
// instruments (EU directives and regulations, AU and Council of Europe
// conventions) embedded in Ghanaian statute text, and classifies each
// reference by its relationship to the citing provision.
package crossref

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// contextWindow is the number of characters captured on each side of a
// match, clipped to the text bounds.
const contextWindow = 120

// instrumentPattern locates one family of instrument citations. Generic
// patterns derive year and number from capture groups; named patterns
// carry a fixed identity independent of the matched text.
type instrumentPattern struct {
	re *regexp.Regexp

	// yearGroup and numberGroup are capture indices for generic patterns.
	// Zero means the identity below is fixed.
	yearGroup   int
	numberGroup int
	typeGroup   int
	commGroup   int

	instrumentType domain.InstrumentType
	community      domain.Community
	year           int
	number         int
}

// patterns are applied in fixed order: the three generic instrument forms
// first, then the five named instruments.
var patterns = []instrumentPattern{
	{
		// "Regulation (EU) No 2016/679", "Directive (EU) 2016/680"
		re:        regexp.MustCompile(`\b(Directive|Regulation)\s+\((EU|EC|EEC|Euratom)\)\s+(?:No\.?\s+)?(\d{2,4})/(\d{1,4})`),
		typeGroup: 1, commGroup: 2, yearGroup: 3, numberGroup: 4,
	},
	{
		// "Regulation 2016/679/EU", "Directive 95/46/EC"
		re:        regexp.MustCompile(`\b(Directive|Regulation)\s+(?:No\.?\s+)?(\d{2,4})/(\d{1,4})/(EU|EC|EEC|Euratom)\b`),
		typeGroup: 1, yearGroup: 2, numberGroup: 3, commGroup: 4,
	},
	{
		// "Regulation 2016/679" with no community marker; EU is assumed.
		re:        regexp.MustCompile(`\b(Directive|Regulation)\s+(?:No\.?\s+)?(\d{2,4})/(\d{1,4})\b`),
		typeGroup: 1, yearGroup: 2, numberGroup: 3,
		community: domain.CommunityEU,
	},
	{
		re:             regexp.MustCompile(`\b(?:General Data Protection Regulation|GDPR)\b`),
		instrumentType: domain.InstrumentRegulation,
		community:      domain.CommunityEU,
		year:           2016, number: 679,
	},
	{
		re:             regexp.MustCompile(`\bData Protection Directive\b`),
		instrumentType: domain.InstrumentDirective,
		community:      domain.CommunityEC,
		year:           1995, number: 46,
	},
	{
		re:             regexp.MustCompile(`\b(?:African Union Convention on Cyber\s?security(?: and Personal Data Protection)?|Malabo Convention)\b`),
		instrumentType: domain.InstrumentConvention,
		community:      domain.CommunityAU,
		year:           2014, number: 27,
	},
	{
		re:             regexp.MustCompile(`\b(?:Convention on Cybercrime|Budapest Convention)\b`),
		instrumentType: domain.InstrumentConvention,
		community:      domain.CommunityCoE,
		year:           2001, number: 185,
	},
	{
		re:             regexp.MustCompile(`\bConvention\s+108\+?`),
		instrumentType: domain.InstrumentConvention,
		community:      domain.CommunityCoE,
		year:           1981, number: 108,
	},
}

// articlePattern extracts a pinpoint article from the context window,
// e.g. "Article 30", "Article 12a", "Article 9(2)".
var articlePattern = regexp.MustCompile(`\bArticle\s+(\d+[a-zA-Z]?(?:\(\d+\))?)`)

// implementsPattern classifies the relationship from implementation
// keywords found in the context window.
var implementsPattern = regexp.MustCompile(`(?i)\b(?:implement\w*|transpos\w*|supplement\w*|compl\w*|gives\s+effect)`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Extract scans text for instrument citations and returns them in pattern
// then match order. Repeated matches of the same instrument and article
// within one call are dropped, not merged. Blank input yields nil.
func Extract(text string) []domain.Reference {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var refs []domain.Reference
	seen := make(map[string]bool)

	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			ref, ok := p.decode(text, loc)
			if !ok {
				continue
			}

			key := ref.InstrumentID() + "|" + ref.Article
			if seen[key] {
				continue
			}
			seen[key] = true
			refs = append(refs, ref)
		}
	}

	return refs
}

// decode builds a Reference from one match of this pattern.
func (p instrumentPattern) decode(text string, loc []int) (domain.Reference, bool) {
	ref := domain.Reference{
		InstrumentType: p.instrumentType,
		Community:      p.community,
		Year:           p.year,
		Number:         p.number,
		FullCitation:   text[loc[0]:loc[1]],
		Relationship:   domain.RelationshipReferences,
	}

	group := func(i int) string {
		if 2*i+1 >= len(loc) || loc[2*i] < 0 {
			return ""
		}
		return text[loc[2*i]:loc[2*i+1]]
	}

	if p.typeGroup > 0 {
		ref.InstrumentType = domain.InstrumentType(strings.ToLower(group(p.typeGroup)))
	}
	if p.commGroup > 0 {
		ref.Community = domain.Community(group(p.commGroup))
	}
	if p.yearGroup > 0 {
		y, err := strconv.Atoi(group(p.yearGroup))
		if err != nil {
			return domain.Reference{}, false
		}
		ref.Year = normalizeYear(y)
	}
	if p.numberGroup > 0 {
		n, err := strconv.Atoi(group(p.numberGroup))
		if err != nil {
			return domain.Reference{}, false
		}
		ref.Number = n
	}

	ref.Context = contextAround(text, loc[0], loc[1])
	ref.Article = extractArticle(ref.Context)
	if implementsPattern.MatchString(ref.Context) {
		ref.Relationship = domain.RelationshipImplements
	}

	return ref, true
}

// normalizeYear expands two-digit years: 50 and above are read as 19xx,
// anything below as 20xx.
func normalizeYear(y int) int {
	if y >= 100 {
		return y
	}
	if y >= 50 {
		return 1900 + y
	}
	return 2000 + y
}

// contextAround captures up to contextWindow bytes on each side of the
// match, whitespace-normalized. Window edges landing inside a multi-byte
// rune back off to the rune boundary so the context stays valid UTF-8.
func contextAround(text string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text[lo:hi], " "))
}

// extractArticle pulls a pinpoint article from the context, or "".
func extractArticle(context string) string {
	m := articlePattern.FindStringSubmatch(context)
	if m == nil {
		return ""
	}
	return m[1]
}
