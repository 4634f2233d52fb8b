package domain

// CitationKind names the surface grammar a citation string matched.
type CitationKind string

const (
	// CitationKindID is the id-based grammar: "act-843-2012, s. 1".
	CitationKindID CitationKind = "id"

	// CitationKindFull is "Section 1, Data Protection Act 2012 (Act 843)"
	// with or without the instrument-number suffix.
	CitationKindFull CitationKind = "full"

	// CitationKindShort is "s. 1 Data Protection Act 2012".
	CitationKindShort CitationKind = "short"

	// CitationKindTrailing is "Data Protection Act 2012 (Act 843), s. 1"
	// with or without the instrument-number suffix.
	CitationKindTrailing CitationKind = "trailing"
)

// CitationStyle selects an output format for a parsed citation.
type CitationStyle string

const (
	StyleFull     CitationStyle = "full"
	StyleShort    CitationStyle = "short"
	StylePinpoint CitationStyle = "pinpoint"
)

// ParsedCitation is the structured form of a free-text citation string.
// It is produced per query and never persisted.
type ParsedCitation struct {
	Valid bool
	Kind  CitationKind

	Title     string
	ActNumber int
	Year      int

	Section    string
	Subsection string
	Paragraph  string

	// Err carries the diagnostic when Valid is false.
	Err string
}

// Pinpoint rebuilds the section/subsection/paragraph portion of the
// citation, e.g. "1(2)(a)". Empty when no section was captured.
func (c ParsedCitation) Pinpoint() string {
	if c.Section == "" {
		return ""
	}
	p := c.Section
	if c.Subsection != "" {
		p += "(" + c.Subsection + ")"
	}
	if c.Paragraph != "" {
		p += "(" + c.Paragraph + ")"
	}
	return p
}

// ValidationResult reports a citation checked against the corpus.
type ValidationResult struct {
	Citation        ParsedCitation
	DocumentExists  bool
	ProvisionExists bool
	DocumentTitle   string
	Status          string
	Warnings        []string
}
