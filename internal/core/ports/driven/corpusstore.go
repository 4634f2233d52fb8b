package driven

import (
	"context"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// ActStore persists act metadata.
type ActStore interface {
	// Save stores or updates an act record (metadata only; provisions,
	// definitions and references are saved through their own stores).
	Save(ctx context.Context, act *domain.Act) error

	// Get retrieves an act with its provisions and definitions.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Act, error)

	// FindByNumberYear resolves an act by instrument number and year.
	FindByNumberYear(ctx context.Context, actNumber, year int) (*domain.Act, error)

	// FindByTitle resolves an act by title substring; when year is
	// non-zero the match must also carry that year.
	FindByTitle(ctx context.Context, title string, year int) (*domain.Act, error)

	// List returns all act records, metadata only, ordered by year then
	// act number.
	List(ctx context.Context) ([]domain.Act, error)
}

// ProvisionStore persists provisions. Any mutation must keep the
// full-text index entry for the provision in sync.
type ProvisionStore interface {
	// Save stores a provision for a document. Returns
	// domain.ErrAlreadyExists on a (document, ref) uniqueness violation.
	Save(ctx context.Context, documentID string, p domain.Provision) error

	// Get retrieves one provision by exact reference.
	Get(ctx context.Context, documentID, ref string) (*domain.Provision, error)

	// List returns a document's provisions in insertion order.
	List(ctx context.Context, documentID string) ([]domain.Provision, error)

	// Refs returns all provision references for a document.
	Refs(ctx context.Context, documentID string) ([]string, error)

	// DeleteByDocument removes all provisions for a document.
	DeleteByDocument(ctx context.Context, documentID string) error
}

// DefinitionStore persists defined terms.
type DefinitionStore interface {
	// Save stores a definition. Returns domain.ErrAlreadyExists on a
	// (document, term) uniqueness violation.
	Save(ctx context.Context, documentID string, d domain.Definition) error

	// List returns a document's definitions.
	List(ctx context.Context, documentID string) ([]domain.Definition, error)

	// Lookup finds definitions of a term across the corpus.
	Lookup(ctx context.Context, term string) ([]domain.Definition, error)
}

// ReferenceStore persists extracted international references.
type ReferenceStore interface {
	// Save stores a reference. Returns domain.ErrAlreadyExists on a
	// (document, provision, instrument, article) uniqueness violation.
	Save(ctx context.Context, ref domain.StoredReference) error

	// ListByDocument returns a document's references in insertion order.
	ListByDocument(ctx context.Context, documentID string) ([]domain.StoredReference, error)

	// ListByInstrument returns all references to one instrument across
	// the corpus.
	ListByInstrument(ctx context.Context, instrumentID string) ([]domain.StoredReference, error)
}

// SearchIndex queries the full-text index over provision content/title.
type SearchIndex interface {
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}

// MetadataStore persists build metadata as key/value pairs.
type MetadataStore interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
}

// TxRunner executes a function inside one atomic transaction. The corpus
// load uses it so that either every document's records land or the run
// aborts before commit.
type TxRunner interface {
	// InTx runs fn with a transaction-scoped view of the stores.
	// Returning an error rolls everything back.
	InTx(ctx context.Context, fn func(tx CorpusTx) error) error
}

// CorpusTx is the transaction-scoped view of the corpus stores.
type CorpusTx interface {
	Acts() ActStore
	Provisions() ProvisionStore
	Definitions() DefinitionStore
	References() ReferenceStore
	Metadata() MetadataStore
}
