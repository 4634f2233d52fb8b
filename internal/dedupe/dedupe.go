// Package dedupe collapses duplicate provision references from a single
// parsed document into one canonical provision per reference.
package dedupe

import (
	"regexp"
	"strings"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// Stats reports data-quality signals from one deduplication pass. Neither
// count blocks ingestion.
type Stats struct {
	// Duplicates is the number of provisions dropped for sharing a
	// reference with an earlier provision.
	Duplicates int

	// Conflicting is the subset of duplicates whose normalized content
	// actually differed from the retained provision.
	Conflicting int
}

var spacePattern = regexp.MustCompile(`\s+`)

// Provisions collapses duplicates by trimmed reference, preserving first-seen
// order. On collision the provision with strictly longer normalized content
// wins; its title falls back to the other's when it has none. Equal-length
// differing content is counted as conflicting and resolved the same way,
// so exact ties keep the first-seen provision.
func Provisions(provisions []domain.Provision) ([]domain.Provision, Stats) {
	var stats Stats
	byRef := make(map[string]int, len(provisions))
	deduped := make([]domain.Provision, 0, len(provisions))

	for _, p := range provisions {
		ref := strings.TrimSpace(p.Ref)
		p.Ref = ref

		idx, ok := byRef[ref]
		if !ok {
			byRef[ref] = len(deduped)
			deduped = append(deduped, p)
			continue
		}

		stats.Duplicates++
		existing := &deduped[idx]

		incoming := normalize(p.Content)
		current := normalize(existing.Content)
		if incoming != current {
			stats.Conflicting++
		}

		if len(incoming) > len(current) {
			if p.Title == "" {
				p.Title = existing.Title
			}
			*existing = p
		} else if existing.Title == "" {
			existing.Title = p.Title
		}
	}

	return deduped, stats
}

// normalize collapses all whitespace runs to single spaces.
func normalize(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
