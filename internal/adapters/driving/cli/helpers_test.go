package cli

import (
	"context"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driving"
)

// setupTestServices swaps the package-level services for mocks and
// returns a cleanup that restores the originals.
func setupTestServices() func() {
	origIngest := ingestService
	origCitation := citationService
	origSearch := searchService
	origActs := actStore
	origDefinitions := definitionStore
	origReferences := referenceStore

	ingestService = &mockIngestService{
		ingestReport: &driving.IngestReport{
			Discovered: 2, Loaded: 2, Stubs: 1,
			Provisions: 4, Definitions: 1, References: 3,
		},
		updateReport: &driving.UpdateReport{Known: 2},
	}
	citationService = &mockCitationService{
		parsed: domain.ParsedCitation{Valid: true, Kind: domain.CitationKindTrailing, Section: "1"},
		result: &domain.ValidationResult{
			Citation:        domain.ParsedCitation{Valid: true, Kind: domain.CitationKindTrailing, Section: "1"},
			DocumentExists:  true,
			ProvisionExists: true,
			DocumentTitle:   "Data Protection Act, 2012 (Act 843)",
			Status:          domain.StatusInForce,
		},
		formatted: "Section 1, Data Protection Act 2012 (Act 843)",
	}
	searchService = &mockSearchService{
		results: []domain.SearchResult{{
			DocumentID:    "act-843-2012",
			DocumentTitle: "Data Protection Act, 2012 (Act 843)",
			ProvisionRef:  "s1",
			Snippet:       ">>personal data<<",
			Score:         -1.2,
		}},
	}
	actStore = &mockActStore{acts: []domain.Act{{
		ID: "act-843-2012", Title: "Data Protection Act, 2012 (Act 843)",
		ActNumber: 843, Year: 2012, Status: domain.StatusInForce,
	}}}
	definitionStore = &mockDefinitionStore{defs: []domain.Definition{
		{Term: "processing", Definition: "an operation on personal data"},
	}}
	referenceStore = &mockReferenceStore{refs: []domain.StoredReference{{
		Reference: domain.Reference{
			InstrumentType: domain.InstrumentRegulation,
			Community:      domain.CommunityEU,
			Year:           2016,
			Number:         679,
			FullCitation:   "Regulation (EU) 2016/679",
			Relationship:   domain.RelationshipImplements,
			IsPrimary:      true,
		},
		DocumentID:   "act-843-2012",
		ProvisionRef: "s1",
	}}}

	return func() {
		ingestService = origIngest
		citationService = origCitation
		searchService = origSearch
		actStore = origActs
		definitionStore = origDefinitions
		referenceStore = origReferences
	}
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	ingestReport *driving.IngestReport
	updateReport *driving.UpdateReport
	err          error
	lastIndexURL string
}

func (m *mockIngestService) Ingest(_ context.Context, indexURL string) (*driving.IngestReport, error) {
	m.lastIndexURL = indexURL
	return m.ingestReport, m.err
}

func (m *mockIngestService) CheckUpdates(_ context.Context, indexURL string) (*driving.UpdateReport, error) {
	m.lastIndexURL = indexURL
	return m.updateReport, m.err
}

// mockCitationService is a mock implementation of driving.CitationService.
type mockCitationService struct {
	parsed    domain.ParsedCitation
	result    *domain.ValidationResult
	formatted string
	err       error
}

func (m *mockCitationService) Parse(_ string) domain.ParsedCitation {
	return m.parsed
}

func (m *mockCitationService) Validate(_ context.Context, _ string) (*domain.ValidationResult, error) {
	return m.result, m.err
}

func (m *mockCitationService) Format(_ context.Context, _ domain.ParsedCitation, _ domain.CitationStyle) (string, error) {
	return m.formatted, m.err
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) ([]domain.SearchResult, error) {
	return m.results, m.err
}

// mockActStore is a mock implementation of driven.ActStore.
type mockActStore struct {
	acts []domain.Act
	err  error
}

func (m *mockActStore) Save(_ context.Context, _ *domain.Act) error { return m.err }

func (m *mockActStore) Get(_ context.Context, id string) (*domain.Act, error) {
	for i := range m.acts {
		if m.acts[i].ID == id {
			return &m.acts[i], m.err
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockActStore) FindByNumberYear(_ context.Context, _, _ int) (*domain.Act, error) {
	if len(m.acts) == 0 {
		return nil, domain.ErrNotFound
	}
	return &m.acts[0], m.err
}

func (m *mockActStore) FindByTitle(_ context.Context, _ string, _ int) (*domain.Act, error) {
	if len(m.acts) == 0 {
		return nil, domain.ErrNotFound
	}
	return &m.acts[0], m.err
}

func (m *mockActStore) List(_ context.Context) ([]domain.Act, error) {
	return m.acts, m.err
}

// mockDefinitionStore is a mock implementation of driven.DefinitionStore.
type mockDefinitionStore struct {
	defs []domain.Definition
	err  error
}

func (m *mockDefinitionStore) Save(_ context.Context, _ string, _ domain.Definition) error {
	return m.err
}

func (m *mockDefinitionStore) List(_ context.Context, _ string) ([]domain.Definition, error) {
	return m.defs, m.err
}

func (m *mockDefinitionStore) Lookup(_ context.Context, _ string) ([]domain.Definition, error) {
	return m.defs, m.err
}

// mockReferenceStore is a mock implementation of driven.ReferenceStore.
type mockReferenceStore struct {
	refs []domain.StoredReference
	err  error
}

func (m *mockReferenceStore) Save(_ context.Context, _ domain.StoredReference) error {
	return m.err
}

func (m *mockReferenceStore) ListByDocument(_ context.Context, _ string) ([]domain.StoredReference, error) {
	return m.refs, m.err
}

func (m *mockReferenceStore) ListByInstrument(_ context.Context, _ string) ([]domain.StoredReference, error) {
	return m.refs, m.err
}
