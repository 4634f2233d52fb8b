package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

func TestParse_Grammars(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.ParsedCitation
	}{
		{
			name: "id based",
			raw:  "act-843-2012, s. 1",
			want: domain.ParsedCitation{
				Valid: true, Kind: domain.CitationKindID,
				ActNumber: 843, Year: 2012, Section: "1",
			},
		},
		{
			name: "id based with pinpoint",
			raw:  "act-843-2012, s. 20(1)(b)",
			want: domain.ParsedCitation{
				Valid: true, Kind: domain.CitationKindID,
				ActNumber: 843, Year: 2012,
				Section: "20", Subsection: "1", Paragraph: "b",
			},
		},
		{
			name: "full with act number",
			raw:  "Section 18, Data Protection Act 2012 (Act 843)",
			want: domain.ParsedCitation{
				Valid: true, Kind: domain.CitationKindFull,
				Title: "Data Protection Act", Year: 2012, ActNumber: 843,
				Section: "18",
			},
		},
		{
			name: "full without act number",
			raw:  "Section 1(2), Data Protection Act 2012",
			want: domain.ParsedCitation{
				Valid: true, Kind: domain.CitationKindFull,
				Title: "Data Protection Act", Year: 2012,
				Section: "1", Subsection: "2",
			},
		},
		{
			name: "short",
			raw:  "s. 35 Cybersecurity Act 2020",
			want: domain.ParsedCitation{
				Valid: true, Kind: domain.CitationKindShort,
				Title: "Cybersecurity Act", Year: 2020, Section: "35",
			},
		},
		{
			name: "trailing with act number",
			raw:  "Data Protection Act 2012 (Act 843), s. 60",
			want: domain.ParsedCitation{
				Valid: true, Kind: domain.CitationKindTrailing,
				Title: "Data Protection Act", Year: 2012, ActNumber: 843,
				Section: "60",
			},
		},
		{
			name: "trailing without act number",
			raw:  "Electronic Transactions Act 2008, s. 5(1)",
			want: domain.ParsedCitation{
				Valid: true, Kind: domain.CitationKindTrailing,
				Title: "Electronic Transactions Act", Year: 2008,
				Section: "5", Subsection: "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The id grammar has priority: "act-843-2012, s. 1" must never be captured
// by a looser trailing grammar, even though it superficially resembles
// "<title> <year>, s. <ref>".
func TestParse_IDGrammarPriority(t *testing.T) {
	got := Parse("act-843-2012, s. 1")
	require.True(t, got.Valid)
	assert.Equal(t, domain.CitationKindID, got.Kind)
	assert.Equal(t, 843, got.ActNumber)
	assert.Equal(t, 2012, got.Year)
	assert.Empty(t, got.Title)
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"the quick brown fox",
		"Section , Data Protection Act 2012",
		"see page 12",
	}

	for _, raw := range tests {
		got := Parse(raw)
		assert.False(t, got.Valid, "expected %q to be invalid", raw)
		assert.NotEmpty(t, got.Err)
	}
	assert.Contains(t, Parse("no grammar here").Err, "no grammar here")
}

// A pinpoint the secondary grammar cannot decompose is kept raw in Section
// while the outer parse still succeeds.
func TestParse_UndecomposablePinpoint(t *testing.T) {
	got := Parse("act-843-2012, s. 20(1)(b)(ii)")
	require.True(t, got.Valid)
	assert.Equal(t, "20(1)(b)(ii)", got.Section)
	assert.Empty(t, got.Subsection)
	assert.Empty(t, got.Paragraph)
}

func TestFormat_Styles(t *testing.T) {
	c := domain.ParsedCitation{
		Valid: true, Title: "Data Protection Act", Year: 2012, ActNumber: 843,
		Section: "20", Subsection: "1", Paragraph: "b",
	}

	assert.Equal(t, "Section 20(1)(b), Data Protection Act 2012 (Act 843)", Format(c, domain.StyleFull))
	assert.Equal(t, "s. 20(1)(b), Data Protection Act 2012", Format(c, domain.StyleShort))
	assert.Equal(t, "s. 20(1)(b)", Format(c, domain.StylePinpoint))

	c.ActNumber = 0
	assert.Equal(t, "Section 20(1)(b), Data Protection Act 2012", Format(c, domain.StyleFull))
}

func TestFormat_InvalidOrSectionless(t *testing.T) {
	assert.Empty(t, Format(domain.ParsedCitation{Valid: false, Section: "1"}, domain.StyleFull))
	assert.Empty(t, Format(domain.ParsedCitation{Valid: true}, domain.StyleShort))
}

// Formatting is idempotent: reformatting the parse of a formatted citation
// reproduces the same string.
func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		"Section 18, Data Protection Act 2012 (Act 843)",
		"Data Protection Act 2012, s. 35(2)",
		"s. 5 Electronic Transactions Act 2008",
	}
	styles := []domain.CitationStyle{domain.StyleFull, domain.StyleShort}

	for _, raw := range inputs {
		for _, style := range styles {
			first := Format(Parse(raw), style)
			require.NotEmpty(t, first, "format(%q, %s)", raw, style)
			second := Format(Parse(first), style)
			assert.Equal(t, first, second, "style %s for %q", style, raw)
		}
	}
}
