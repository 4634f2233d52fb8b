package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	trailingYearPattern = regexp.MustCompile(`,?\s+\d{4}\s*(?:\([^)]*\))?\s*$`)
	actNumberPattern    = regexp.MustCompile(`\s*\(Act\s+\d+\)\s*$`)
)

// shortNameStopwords are skipped when building initials.
var shortNameStopwords = map[string]bool{
	"the": true, "of": true, "and": true, "for": true, "to": true,
	"a": true, "an": true, "in": true, "on": true, "or": true,
}

// ShortName derives a display name from an act title. Short titles keep
// their words; longer ones become the initials of up to four capitalized
// non-stopword terms. The year is always appended.
func ShortName(title string, year int) string {
	core := strings.TrimSpace(title)
	core = actNumberPattern.ReplaceAllString(core, "")
	core = trailingYearPattern.ReplaceAllString(core, "")
	core = strings.TrimSpace(strings.TrimSuffix(core, ","))
	if core == "" {
		return fmt.Sprintf("Act %d", year)
	}

	words := strings.Fields(core)
	if len(words) <= 3 {
		return fmt.Sprintf("%s %d", core, year)
	}

	var initials []rune
	for _, w := range words {
		if len(initials) == 4 {
			break
		}
		if shortNameStopwords[strings.ToLower(w)] {
			continue
		}
		r := []rune(w)[0]
		if unicode.IsUpper(r) {
			initials = append(initials, r)
		}
	}
	if len(initials) == 0 {
		return fmt.Sprintf("%s %d", core, year)
	}

	return fmt.Sprintf("%s %d", string(initials), year)
}
