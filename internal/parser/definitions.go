package parser

import (
	"regexp"
	"strings"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

var (
	// interpretationPattern recognises the headings Ghanaian acts give
	// their definitions provisions.
	interpretationPattern = regexp.MustCompile(`(?i)\b(?:interpretation|definitions?)\b`)

	// definitionPattern matches one defined term: a quoted term, "means",
	// and the definition up to the terminating semicolon. Source pages mix
	// straight and curly quote styles.
	definitionPattern = regexp.MustCompile(`["'\x{2018}\x{201C}]([^"'\x{2018}\x{2019}\x{201C}\x{201D}]+)["'\x{2019}\x{201D}]\s+means\s+([^;]+);`)
)

// ExtractDefinitions collects defined terms from every provision whose
// title marks it as an interpretation or definitions section. A term
// defined twice in one document is dropped, not merged.
func ExtractDefinitions(provisions []domain.Provision) []domain.Definition {
	var defs []domain.Definition
	seen := make(map[string]bool)

	for _, p := range provisions {
		if !interpretationPattern.MatchString(p.Title) {
			continue
		}
		for _, m := range definitionPattern.FindAllStringSubmatch(p.Content, -1) {
			term := strings.TrimSpace(m[1])
			if term == "" || seen[strings.ToLower(term)] {
				continue
			}
			seen[strings.ToLower(term)] = true
			defs = append(defs, domain.Definition{
				Term:            term,
				Definition:      strings.TrimSpace(m[2]),
				SourceProvision: p.Ref,
			})
		}
	}

	return defs
}
