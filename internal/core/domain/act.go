package domain

import "fmt"

// Act statuses as recorded in the corpus.
const (
	// StatusInForce marks an act believed to be current law.
	StatusInForce = "in_force"

	// StatusRepealed marks an act that has been repealed.
	StatusRepealed = "repealed"

	// StatusUnavailable marks a stub record created when the source page
	// could not be retrieved (404 or redirect). The stub prevents the act
	// from being re-fetched on every run.
	StatusUnavailable = "unavailable"

	// StatusNoContent marks an act whose page was retrieved but yielded
	// zero provisions from every parsing strategy.
	StatusNoContent = "no_content"
)

// ActIndexEntry is a single entry discovered on the publication index page.
// It exists only to drive fetch order and is never persisted.
type ActIndexEntry struct {
	Title     string
	Year      int
	ActNumber int
	SourceURL string
}

// Act is a parsed statute: metadata plus ordered provisions and definitions.
type Act struct {
	// ID is the stable natural key, derived as "act-<number>-<year>".
	ID string

	// Title is the long title as published.
	Title string

	// ShortName is a derived display name, e.g. "DPA 2012".
	ShortName string

	// ActNumber is the instrument number within the year.
	ActNumber int

	// Year is the year of enactment.
	Year int

	// Status is one of the Status* constants.
	Status string

	// IssuedDate is the publication date when known, ISO formatted.
	IssuedDate string

	// SourceURL is the page the act was parsed from.
	SourceURL string

	// Provisions are in document order.
	Provisions []Provision

	// Definitions are in extraction order.
	Definitions []Definition
}

// ActID derives the stable document key from an act number and year.
func ActID(actNumber, year int) string {
	return fmt.Sprintf("act-%d-%d", actNumber, year)
}

// Provision is an addressable unit of a statute.
type Provision struct {
	// Ref is the canonical provision reference: "s<N>" or
	// "s<N>(<sub>)(<para>)". Unique within a document after deduplication.
	Ref string

	// Part and Chapter carry the most recently seen ancestor headings at
	// parse time. Either may be empty.
	Part    string
	Chapter string

	// Section is the bare section number, e.g. "12".
	Section string

	// Title is the section heading, possibly empty.
	Title string

	// Content is the provision text with normalized whitespace.
	Content string
}

// Definition is a term defined by an interpretation provision.
type Definition struct {
	Term            string
	Definition      string
	SourceProvision string
}
