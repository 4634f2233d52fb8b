package domain

import "fmt"

// InstrumentType classifies a foreign or international legal instrument.
type InstrumentType string

const (
	InstrumentDirective  InstrumentType = "directive"
	InstrumentRegulation InstrumentType = "regulation"
	InstrumentConvention InstrumentType = "convention"
)

// Community identifies the issuing community or body of an instrument.
type Community string

const (
	CommunityEU      Community = "EU"
	CommunityEC      Community = "EC"
	CommunityEEC     Community = "EEC"
	CommunityEuratom Community = "Euratom"
	CommunityCoE     Community = "CoE"
	CommunityAU      Community = "AU"
	CommunityECOWAS  Community = "ECOWAS"
)

// Relationship classifies how local statute text relates to an instrument.
type Relationship string

const (
	// RelationshipImplements marks text that transposes or gives effect to
	// the instrument.
	RelationshipImplements Relationship = "implements"

	// RelationshipReferences marks a bare mention.
	RelationshipReferences Relationship = "references"
)

// Reference is a detected citation of a foreign or international legal
// instrument embedded in provision text.
type Reference struct {
	InstrumentType InstrumentType
	Community      Community
	Year           int
	Number         int

	// Article is the pinpoint article within the instrument, or "" when no
	// article was found near the match.
	Article string

	// FullCitation is the matched text.
	FullCitation string

	// Context is up to 120 characters each side of the match,
	// whitespace-normalized.
	Context string

	Relationship Relationship

	// IsPrimary marks the single reference per (document, instrument) pair
	// designated as the document's principal transposition. Assigned by the
	// ingestion pipeline, not the extractor.
	IsPrimary bool
}

// InstrumentID is the canonical instrument identifier,
// "<type>:<year>/<number>".
func (r Reference) InstrumentID() string {
	return fmt.Sprintf("%s:%d/%d", r.InstrumentType, r.Year, r.Number)
}

// StoredReference is a Reference as persisted, carrying its source location.
type StoredReference struct {
	Reference

	// DocumentID is the owning act.
	DocumentID string

	// ProvisionRef is the provision the reference was found in.
	ProvisionRef string
}
