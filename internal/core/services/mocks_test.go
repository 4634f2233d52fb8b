package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driven"
)

// --- Mock fetcher ---

// mockFetcher serves canned responses keyed by URL and records call order.
type mockFetcher struct {
	responses map[string]*driven.FetchResult
	errs      map[string]error
	calls     []string
}

var _ driven.Fetcher = (*mockFetcher)(nil)

func newMockFetcher() *mockFetcher {
	return &mockFetcher{
		responses: make(map[string]*driven.FetchResult),
		errs:      make(map[string]error),
	}
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (*driven.FetchResult, error) {
	m.calls = append(m.calls, url)
	if err, ok := m.errs[url]; ok {
		return nil, err
	}
	if res, ok := m.responses[url]; ok {
		return res, nil
	}
	return &driven.FetchResult{Status: 404}, nil
}

// --- In-memory corpus store ---

// memState is the shared backing data for the in-memory corpus fakes.
type memState struct {
	acts        map[string]domain.Act
	provisions  map[string][]domain.Provision
	definitions map[string][]domain.Definition
	references  []domain.StoredReference
	metadata    map[string]string
}

func newMemState() *memState {
	return &memState{
		acts:        make(map[string]domain.Act),
		provisions:  make(map[string][]domain.Provision),
		definitions: make(map[string][]domain.Definition),
		metadata:    make(map[string]string),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.acts {
		c.acts[k] = v
	}
	for k, v := range s.provisions {
		c.provisions[k] = append([]domain.Provision(nil), v...)
	}
	for k, v := range s.definitions {
		c.definitions[k] = append([]domain.Definition(nil), v...)
	}
	c.references = append([]domain.StoredReference(nil), s.references...)
	for k, v := range s.metadata {
		c.metadata[k] = v
	}
	return c
}

// memCorpus implements driven.TxRunner and driven.CorpusTx over memState.
// InTx runs against a clone and commits it back only on success, so
// rollback semantics hold.
type memCorpus struct {
	st *memState
}

var (
	_ driven.TxRunner = (*memCorpus)(nil)
	_ driven.CorpusTx = (*memCorpus)(nil)
)

func newMemCorpus() *memCorpus {
	return &memCorpus{st: newMemState()}
}

func (c *memCorpus) InTx(_ context.Context, fn func(tx driven.CorpusTx) error) error {
	staged := &memCorpus{st: c.st.clone()}
	if err := fn(staged); err != nil {
		return err
	}
	// Commit in place so accessors created before the transaction see it.
	*c.st = *staged.st
	return nil
}

func (c *memCorpus) Acts() driven.ActStore               { return &memActs{st: c.st} }
func (c *memCorpus) Provisions() driven.ProvisionStore   { return &memProvisions{st: c.st} }
func (c *memCorpus) Definitions() driven.DefinitionStore { return &memDefinitions{st: c.st} }
func (c *memCorpus) References() driven.ReferenceStore   { return &memReferences{st: c.st} }
func (c *memCorpus) Metadata() driven.MetadataStore      { return &memMetadata{st: c.st} }

type memActs struct {
	st *memState
}

var _ driven.ActStore = (*memActs)(nil)

func (m *memActs) Save(_ context.Context, act *domain.Act) error {
	stored := *act
	stored.Provisions = nil
	stored.Definitions = nil
	m.st.acts[act.ID] = stored
	return nil
}

func (m *memActs) Get(ctx context.Context, id string) (*domain.Act, error) {
	act, ok := m.st.acts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	act.Provisions = append([]domain.Provision(nil), m.st.provisions[id]...)
	act.Definitions = append([]domain.Definition(nil), m.st.definitions[id]...)
	return &act, nil
}

func (m *memActs) FindByNumberYear(_ context.Context, actNumber, year int) (*domain.Act, error) {
	for _, act := range m.st.acts {
		if act.ActNumber == actNumber && act.Year == year {
			found := act
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memActs) FindByTitle(_ context.Context, title string, year int) (*domain.Act, error) {
	needle := strings.ToLower(title)
	for _, act := range m.st.acts {
		if !strings.Contains(strings.ToLower(act.Title), needle) {
			continue
		}
		if year != 0 && act.Year != year {
			continue
		}
		found := act
		return &found, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memActs) List(_ context.Context) ([]domain.Act, error) {
	var acts []domain.Act
	for _, act := range m.st.acts {
		acts = append(acts, act)
	}
	return acts, nil
}

type memProvisions struct {
	st *memState
}

var _ driven.ProvisionStore = (*memProvisions)(nil)

func (m *memProvisions) Save(_ context.Context, documentID string, p domain.Provision) error {
	for _, existing := range m.st.provisions[documentID] {
		if existing.Ref == p.Ref {
			return domain.ErrAlreadyExists
		}
	}
	m.st.provisions[documentID] = append(m.st.provisions[documentID], p)
	return nil
}

func (m *memProvisions) Get(_ context.Context, documentID, ref string) (*domain.Provision, error) {
	for _, p := range m.st.provisions[documentID] {
		if p.Ref == ref {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memProvisions) List(_ context.Context, documentID string) ([]domain.Provision, error) {
	return append([]domain.Provision(nil), m.st.provisions[documentID]...), nil
}

func (m *memProvisions) Refs(_ context.Context, documentID string) ([]string, error) {
	var refs []string
	for _, p := range m.st.provisions[documentID] {
		refs = append(refs, p.Ref)
	}
	return refs, nil
}

func (m *memProvisions) DeleteByDocument(_ context.Context, documentID string) error {
	delete(m.st.provisions, documentID)
	return nil
}

type memDefinitions struct {
	st *memState
}

var _ driven.DefinitionStore = (*memDefinitions)(nil)

func (m *memDefinitions) Save(_ context.Context, documentID string, d domain.Definition) error {
	for _, existing := range m.st.definitions[documentID] {
		if strings.EqualFold(existing.Term, d.Term) {
			return domain.ErrAlreadyExists
		}
	}
	m.st.definitions[documentID] = append(m.st.definitions[documentID], d)
	return nil
}

func (m *memDefinitions) List(_ context.Context, documentID string) ([]domain.Definition, error) {
	return append([]domain.Definition(nil), m.st.definitions[documentID]...), nil
}

func (m *memDefinitions) Lookup(_ context.Context, term string) ([]domain.Definition, error) {
	var defs []domain.Definition
	for _, docDefs := range m.st.definitions {
		for _, d := range docDefs {
			if strings.EqualFold(d.Term, term) {
				defs = append(defs, d)
			}
		}
	}
	return defs, nil
}

type memReferences struct {
	st *memState
}

var _ driven.ReferenceStore = (*memReferences)(nil)

func refKey(r domain.StoredReference) string {
	return fmt.Sprintf("%s|%s|%s|%s", r.DocumentID, r.ProvisionRef, r.InstrumentID(), r.Article)
}

func (m *memReferences) Save(_ context.Context, ref domain.StoredReference) error {
	for _, existing := range m.st.references {
		if refKey(existing) == refKey(ref) {
			return domain.ErrAlreadyExists
		}
	}
	m.st.references = append(m.st.references, ref)
	return nil
}

func (m *memReferences) ListByDocument(_ context.Context, documentID string) ([]domain.StoredReference, error) {
	var refs []domain.StoredReference
	for _, r := range m.st.references {
		if r.DocumentID == documentID {
			refs = append(refs, r)
		}
	}
	return refs, nil
}

func (m *memReferences) ListByInstrument(_ context.Context, instrumentID string) ([]domain.StoredReference, error) {
	var refs []domain.StoredReference
	for _, r := range m.st.references {
		if r.InstrumentID() == instrumentID {
			refs = append(refs, r)
		}
	}
	return refs, nil
}

type memMetadata struct {
	st *memState
}

var _ driven.MetadataStore = (*memMetadata)(nil)

func (m *memMetadata) Set(_ context.Context, key, value string) error {
	m.st.metadata[key] = value
	return nil
}

func (m *memMetadata) Get(_ context.Context, key string) (string, error) {
	v, ok := m.st.metadata[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// --- Mock search index ---

type mockSearchIndex struct {
	results []domain.SearchResult
	err     error
	queries []string
}

var _ driven.SearchIndex = (*mockSearchIndex)(nil)

func (m *mockSearchIndex) Search(_ context.Context, query string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}
