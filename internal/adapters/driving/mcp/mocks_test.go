package mcp

import (
	"context"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

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

// mockActStore is a mock implementation of driven.ActStore.
type mockActStore struct {
	act  *domain.Act
	acts []domain.Act
	err  error
}

func (m *mockActStore) Save(_ context.Context, _ *domain.Act) error { return m.err }

func (m *mockActStore) Get(_ context.Context, _ string) (*domain.Act, error) {
	if m.act == nil {
		return nil, domain.ErrNotFound
	}
	return m.act, m.err
}

func (m *mockActStore) FindByNumberYear(_ context.Context, _, _ int) (*domain.Act, error) {
	if m.act == nil {
		return nil, domain.ErrNotFound
	}
	return m.act, m.err
}

func (m *mockActStore) FindByTitle(_ context.Context, _ string, _ int) (*domain.Act, error) {
	if m.act == nil {
		return nil, domain.ErrNotFound
	}
	return m.act, m.err
}

func (m *mockActStore) List(_ context.Context) ([]domain.Act, error) {
	return m.acts, m.err
}

// mockProvisionStore is a mock implementation of driven.ProvisionStore.
type mockProvisionStore struct {
	provision *domain.Provision
	err       error
}

func (m *mockProvisionStore) Save(_ context.Context, _ string, _ domain.Provision) error {
	return m.err
}

func (m *mockProvisionStore) Get(_ context.Context, _, _ string) (*domain.Provision, error) {
	if m.provision == nil {
		return nil, domain.ErrNotFound
	}
	return m.provision, m.err
}

func (m *mockProvisionStore) List(_ context.Context, _ string) ([]domain.Provision, error) {
	return nil, m.err
}

func (m *mockProvisionStore) Refs(_ context.Context, _ string) ([]string, error) {
	return nil, m.err
}

func (m *mockProvisionStore) DeleteByDocument(_ context.Context, _ string) error {
	return m.err
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
