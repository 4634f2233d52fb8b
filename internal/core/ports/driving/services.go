package driving

import (
	"context"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// IngestService runs the ingestion pipeline: discovery, fetch, parse,
// dedupe, cross-reference extraction and the atomic corpus load.
type IngestService interface {
	// Ingest discovers acts on the index page and loads the corpus in one
	// transaction. Per-document retrieval failures degrade to stub
	// records; transport exhaustion aborts the run.
	Ingest(ctx context.Context, indexURL string) (*IngestReport, error)

	// CheckUpdates compares the index page against the stored build
	// metadata without writing anything. Each index fetch is bounded by a
	// hard wall-clock timeout.
	CheckUpdates(ctx context.Context, indexURL string) (*UpdateReport, error)
}

// IngestReport summarises one ingestion run.
type IngestReport struct {
	Discovered           int
	Loaded               int
	Stubs                int
	Provisions           int
	Definitions          int
	References           int
	DuplicateProvisions  int
	ConflictingDuplicate int
}

// UpdateReport summarises an update check.
type UpdateReport struct {
	Known   int
	New     []domain.ActIndexEntry
	Changed []domain.ActIndexEntry
}

// CitationService parses, validates and formats legal citations against
// the corpus. It is stateless apart from read-only corpus lookups and is
// safe for concurrent callers.
type CitationService interface {
	// Parse classifies a free-text citation. Never errors; unparseable
	// input yields Valid:false with a diagnostic.
	Parse(raw string) domain.ParsedCitation

	// Validate re-parses the citation and checks document and provision
	// existence against the corpus.
	Validate(ctx context.Context, raw string) (*domain.ValidationResult, error)

	// Format renders a citation in the given style, resolving the
	// document title when the grammar did not capture one.
	Format(ctx context.Context, c domain.ParsedCitation, style domain.CitationStyle) (string, error)
}

// SearchService runs full-text queries over provision content.
type SearchService interface {
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
