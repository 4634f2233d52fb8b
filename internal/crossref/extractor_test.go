package crossref

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

func TestExtract_GenericForms(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType domain.InstrumentType
		wantComm domain.Community
		wantYear int
		wantNum  int
	}{
		{
			name:     "parenthesised community with No",
			text:     "having regard to Regulation (EU) No 2016/679 of the European Parliament",
			wantType: domain.InstrumentRegulation,
			wantComm: domain.CommunityEU,
			wantYear: 2016, wantNum: 679,
		},
		{
			name:     "trailing community",
			text:     "as set out in Directive 95/46/EC on data protection",
			wantType: domain.InstrumentDirective,
			wantComm: domain.CommunityEC,
			wantYear: 1995, wantNum: 46,
		},
		{
			name:     "bare form defaults to EU",
			text:     "consistent with Regulation 2016/679 in all respects",
			wantType: domain.InstrumentRegulation,
			wantComm: domain.CommunityEU,
			wantYear: 2016, wantNum: 679,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := Extract(tt.text)
			require.Len(t, refs, 1)
			assert.Equal(t, tt.wantType, refs[0].InstrumentType)
			assert.Equal(t, tt.wantComm, refs[0].Community)
			assert.Equal(t, tt.wantYear, refs[0].Year)
			assert.Equal(t, tt.wantNum, refs[0].Number)
			assert.Equal(t, domain.RelationshipReferences, refs[0].Relationship)
		})
	}
}

func TestExtract_NamedInstruments(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantID string
	}{
		{"gdpr acronym", "standards equivalent to the GDPR", "regulation:2016/679"},
		{"gdpr long name", "under the General Data Protection Regulation", "regulation:2016/679"},
		{"data protection directive", "repealing the Data Protection Directive", "directive:1995/46"},
		{"malabo", "Ghana has ratified the Malabo Convention", "convention:2014/27"},
		{"budapest", "acceded to the Convention on Cybercrime", "convention:2001/185"},
		{"convention 108", "a party to Convention 108+", "convention:1981/108"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := Extract(tt.text)
			require.Len(t, refs, 1)
			assert.Equal(t, tt.wantID, refs[0].InstrumentID())
		})
	}
}

func TestExtract_TwoDigitYearNormalization(t *testing.T) {
	refs := Extract("see Directive 95/46/EC and Directive 09/136/EC")
	require.Len(t, refs, 2)
	assert.Equal(t, 1995, refs[0].Year)
	assert.Equal(t, 2009, refs[1].Year)
}

func TestExtract_ArticleAndRelationship(t *testing.T) {
	text := "This section implements Article 33 of Regulation (EU) 2016/679 on breach notification."
	refs := Extract(text)
	require.Len(t, refs, 1)
	assert.Equal(t, "33", refs[0].Article)
	assert.Equal(t, domain.RelationshipImplements, refs[0].Relationship)
}

func TestExtract_ImplementationKeywords(t *testing.T) {
	tests := []struct {
		text string
		want domain.Relationship
	}{
		{"this Act transposes Directive 95/46/EC", domain.RelationshipImplements},
		{"supplements Regulation (EU) 2016/679", domain.RelationshipImplements},
		{"gives effect to the Budapest Convention", domain.RelationshipImplements},
		{"compliance with Regulation (EU) 2016/679", domain.RelationshipImplements},
		{"as mentioned in Regulation (EU) 2016/679", domain.RelationshipReferences},
	}

	for _, tt := range tests {
		refs := Extract(tt.text)
		require.Len(t, refs, 1, "text %q", tt.text)
		assert.Equal(t, tt.want, refs[0].Relationship, "text %q", tt.text)
	}
}

// The same instrument cited twice with the same article collapses to one
// reference; distinct articles stay distinct.
func TestExtract_DedupByInstrumentAndArticle(t *testing.T) {
	padding := strings.Repeat("x ", 130)

	same := "Regulation (EU) No 2016/679 " + padding + " Regulation (EU) No 2016/679"
	refs := Extract(same)
	assert.Len(t, refs, 1)

	distinct := "under Article 5 of Regulation (EU) No 2016/679 " + padding +
		" see Article 33 of Regulation (EU) No 2016/679"
	refs = Extract(distinct)
	require.Len(t, refs, 2)
	assert.Equal(t, "5", refs[0].Article)
	assert.Equal(t, "33", refs[1].Article)
	assert.Equal(t, refs[0].InstrumentID(), refs[1].InstrumentID())
}

// A generic match and a named match of the same instrument in one text
// produce a single reference.
func TestExtract_GenericAndNamedOverlap(t *testing.T) {
	refs := Extract("Regulation (EU) 2016/679 (the General Data Protection Regulation)")
	assert.Len(t, refs, 1)
}

func TestExtract_ContextWindow(t *testing.T) {
	long := strings.Repeat("a", 500) + " Directive 95/46/EC " + strings.Repeat("b", 500)
	refs := Extract(long)
	require.Len(t, refs, 1)
	// 120 chars each side plus the citation itself, whitespace-normalized.
	assert.LessOrEqual(t, len(refs[0].Context), 240+len("Directive 95/46/EC")+2)
	assert.Contains(t, refs[0].Context, "Directive 95/46/EC")
}

func TestExtract_ContextStaysValidUTF8(t *testing.T) {
	// Curly quotes are three bytes each; the padding puts one across the
	// window edge on both sides of the match.
	pad := strings.Repeat("“ab” ", 60)
	refs := Extract(pad + "Directive 95/46/EC " + pad)

	require.Len(t, refs, 1)
	assert.True(t, utf8.ValidString(refs[0].Context))
	assert.Contains(t, refs[0].Context, "Directive 95/46/EC")
}

func TestExtract_BlankInput(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   \n\t"))
}
