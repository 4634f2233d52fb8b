package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driven"
)

// defaultSearchLimit caps search results when the caller gives no limit.
const defaultSearchLimit = 20

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Every sub-store runs against a querier so the same code serves both
// direct access and the transaction-scoped view used by corpus loads.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a unified SQLite-based corpus store that provides access to
// all corpus store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.ghana-law-mcp/corpus.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ghana-law-mcp")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Acts returns an ActStore interface backed by this store.
func (s *Store) Acts() driven.ActStore {
	return &actStore{q: s.db}
}

// Provisions returns a ProvisionStore interface backed by this store.
func (s *Store) Provisions() driven.ProvisionStore {
	return &provisionStore{q: s.db}
}

// Definitions returns a DefinitionStore interface backed by this store.
func (s *Store) Definitions() driven.DefinitionStore {
	return &definitionStore{q: s.db}
}

// References returns a ReferenceStore interface backed by this store.
func (s *Store) References() driven.ReferenceStore {
	return &referenceStore{q: s.db}
}

// Metadata returns a MetadataStore interface backed by this store.
func (s *Store) Metadata() driven.MetadataStore {
	return &metadataStore{q: s.db}
}

// SearchIndex returns a SearchIndex interface backed by this store.
func (s *Store) SearchIndex() driven.SearchIndex {
	return &searchIndex{q: s.db}
}

var _ driven.TxRunner = (*Store)(nil)

// InTx runs fn against a transaction-scoped view of the corpus stores.
// An error from fn rolls every write back.
func (s *Store) InTx(ctx context.Context, fn func(tx driven.CorpusTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(&corpusTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// corpusTx implements driven.CorpusTx over a single *sql.Tx.
type corpusTx struct {
	tx *sql.Tx
}

var _ driven.CorpusTx = (*corpusTx)(nil)

func (t *corpusTx) Acts() driven.ActStore               { return &actStore{q: t.tx} }
func (t *corpusTx) Provisions() driven.ProvisionStore   { return &provisionStore{q: t.tx} }
func (t *corpusTx) Definitions() driven.DefinitionStore { return &definitionStore{q: t.tx} }
func (t *corpusTx) References() driven.ReferenceStore   { return &referenceStore{q: t.tx} }
func (t *corpusTx) Metadata() driven.MetadataStore      { return &metadataStore{q: t.tx} }

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// isUniqueViolation reports whether err is a SQLite uniqueness failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ==================== Act Store ====================

// actStore implements driven.ActStore.
type actStore struct {
	q querier
}

var _ driven.ActStore = (*actStore)(nil)

// Save stores or updates an act record. Provisions and definitions are
// persisted through their own stores.
func (s *actStore) Save(ctx context.Context, act *domain.Act) error {
	if act.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO documents (id, title, short_name, act_number, year, status, issued_date, source_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			short_name = excluded.short_name,
			act_number = excluded.act_number,
			year = excluded.year,
			status = excluded.status,
			issued_date = excluded.issued_date,
			source_url = excluded.source_url,
			updated_at = CURRENT_TIMESTAMP
	`, act.ID, act.Title, act.ShortName, act.ActNumber, act.Year,
		act.Status, act.IssuedDate, act.SourceURL)

	if err != nil {
		return fmt.Errorf("saving act: %w", err)
	}
	return nil
}

// Get retrieves an act with its provisions and definitions.
func (s *actStore) Get(ctx context.Context, id string) (*domain.Act, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT id, title, short_name, act_number, year, status, issued_date, source_url
		FROM documents WHERE id = ?
	`, id)

	act, err := scanAct(row)
	if err != nil {
		return nil, err
	}

	provisions := &provisionStore{q: s.q}
	if act.Provisions, err = provisions.List(ctx, act.ID); err != nil {
		return nil, err
	}

	definitions := &definitionStore{q: s.q}
	if act.Definitions, err = definitions.List(ctx, act.ID); err != nil {
		return nil, err
	}

	return act, nil
}

// FindByNumberYear resolves an act by instrument number and year.
func (s *actStore) FindByNumberYear(ctx context.Context, actNumber, year int) (*domain.Act, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT id, title, short_name, act_number, year, status, issued_date, source_url
		FROM documents WHERE act_number = ? AND year = ?
	`, actNumber, year)

	return scanAct(row)
}

// FindByTitle resolves an act by case-insensitive title substring. A
// non-zero year constrains the match further.
func (s *actStore) FindByTitle(ctx context.Context, title string, year int) (*domain.Act, error) {
	query := `
		SELECT id, title, short_name, act_number, year, status, issued_date, source_url
		FROM documents
		WHERE (title LIKE '%' || ? || '%' COLLATE NOCASE
		   OR short_name LIKE '%' || ? || '%' COLLATE NOCASE)
	`
	args := []any{title, title}
	if year != 0 {
		query += " AND year = ?"
		args = append(args, year)
	}
	query += " ORDER BY year, act_number LIMIT 1"

	return scanAct(s.q.QueryRowContext(ctx, query, args...))
}

// List returns all act records, metadata only.
func (s *actStore) List(ctx context.Context) ([]domain.Act, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, title, short_name, act_number, year, status, issued_date, source_url
		FROM documents
		ORDER BY year, act_number
	`)
	if err != nil {
		return nil, fmt.Errorf("querying acts: %w", err)
	}
	defer rows.Close()

	var acts []domain.Act //nolint:prealloc // size unknown from query
	for rows.Next() {
		var act domain.Act
		if err := rows.Scan(&act.ID, &act.Title, &act.ShortName, &act.ActNumber,
			&act.Year, &act.Status, &act.IssuedDate, &act.SourceURL); err != nil {
			return nil, fmt.Errorf("scanning act: %w", err)
		}
		acts = append(acts, act)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating acts: %w", err)
	}

	return acts, nil
}

// scanAct scans a single act row.
func scanAct(row *sql.Row) (*domain.Act, error) {
	var act domain.Act
	if err := row.Scan(&act.ID, &act.Title, &act.ShortName, &act.ActNumber,
		&act.Year, &act.Status, &act.IssuedDate, &act.SourceURL); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning act: %w", err)
	}
	return &act, nil
}

// ==================== Provision Store ====================

// provisionStore implements driven.ProvisionStore. The full-text index
// over provisions is maintained by triggers, so plain inserts and
// deletes here keep it in sync.
type provisionStore struct {
	q querier
}

var _ driven.ProvisionStore = (*provisionStore)(nil)

// Save stores a provision for a document.
func (s *provisionStore) Save(ctx context.Context, documentID string, p domain.Provision) error {
	if documentID == "" || p.Ref == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO provisions (document_id, ref, part, chapter, section, title, content)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, documentID, p.Ref, p.Part, p.Chapter, p.Section, p.Title, p.Content)

	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("saving provision: %w", err)
	}
	return nil
}

// Get retrieves one provision by exact reference.
func (s *provisionStore) Get(ctx context.Context, documentID, ref string) (*domain.Provision, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT ref, part, chapter, section, title, content
		FROM provisions WHERE document_id = ? AND ref = ?
	`, documentID, ref)

	var p domain.Provision
	if err := row.Scan(&p.Ref, &p.Part, &p.Chapter, &p.Section, &p.Title, &p.Content); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning provision: %w", err)
	}
	return &p, nil
}

// List returns a document's provisions in insertion order.
func (s *provisionStore) List(ctx context.Context, documentID string) ([]domain.Provision, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT ref, part, chapter, section, title, content
		FROM provisions WHERE document_id = ?
		ORDER BY id
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying provisions: %w", err)
	}
	defer rows.Close()

	var provisions []domain.Provision //nolint:prealloc // size unknown from query
	for rows.Next() {
		var p domain.Provision
		if err := rows.Scan(&p.Ref, &p.Part, &p.Chapter, &p.Section, &p.Title, &p.Content); err != nil {
			return nil, fmt.Errorf("scanning provision: %w", err)
		}
		provisions = append(provisions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating provisions: %w", err)
	}

	return provisions, nil
}

// Refs returns all provision references for a document.
func (s *provisionStore) Refs(ctx context.Context, documentID string) ([]string, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT ref FROM provisions WHERE document_id = ? ORDER BY id
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying provision refs: %w", err)
	}
	defer rows.Close()

	var refs []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("scanning provision ref: %w", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating provision refs: %w", err)
	}

	return refs, nil
}

// DeleteByDocument removes all provisions for a document.
func (s *provisionStore) DeleteByDocument(ctx context.Context, documentID string) error {
	_, err := s.q.ExecContext(ctx, "DELETE FROM provisions WHERE document_id = ?", documentID)
	if err != nil {
		return fmt.Errorf("deleting provisions: %w", err)
	}
	return nil
}

// ==================== Definition Store ====================

// definitionStore implements driven.DefinitionStore.
type definitionStore struct {
	q querier
}

var _ driven.DefinitionStore = (*definitionStore)(nil)

// Save stores a definition.
func (s *definitionStore) Save(ctx context.Context, documentID string, d domain.Definition) error {
	if documentID == "" || d.Term == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO definitions (document_id, term, definition, source_provision)
		VALUES (?, ?, ?, ?)
	`, documentID, d.Term, d.Definition, d.SourceProvision)

	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("saving definition: %w", err)
	}
	return nil
}

// List returns a document's definitions.
func (s *definitionStore) List(ctx context.Context, documentID string) ([]domain.Definition, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT term, definition, source_provision
		FROM definitions WHERE document_id = ?
		ORDER BY id
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying definitions: %w", err)
	}
	defer rows.Close()

	return scanDefinitions(rows)
}

// Lookup finds definitions of a term across the corpus.
func (s *definitionStore) Lookup(ctx context.Context, term string) ([]domain.Definition, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT term, definition, source_provision
		FROM definitions WHERE term = ? COLLATE NOCASE
		ORDER BY document_id
	`, term)
	if err != nil {
		return nil, fmt.Errorf("querying definitions by term: %w", err)
	}
	defer rows.Close()

	return scanDefinitions(rows)
}

// scanDefinitions scans multiple definition rows.
func scanDefinitions(rows *sql.Rows) ([]domain.Definition, error) {
	var defs []domain.Definition //nolint:prealloc // size unknown from query
	for rows.Next() {
		var d domain.Definition
		if err := rows.Scan(&d.Term, &d.Definition, &d.SourceProvision); err != nil {
			return nil, fmt.Errorf("scanning definition: %w", err)
		}
		defs = append(defs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating definitions: %w", err)
	}

	return defs, nil
}

// ==================== Reference Store ====================

// referenceStore implements driven.ReferenceStore.
type referenceStore struct {
	q querier
}

var _ driven.ReferenceStore = (*referenceStore)(nil)

// Save stores an extracted international reference.
func (s *referenceStore) Save(ctx context.Context, ref domain.StoredReference) error {
	if ref.DocumentID == "" || ref.ProvisionRef == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO international_references
			(id, document_id, provision_ref, instrument_type, community,
			 year, number, instrument_id, article, full_citation, context,
			 relationship, is_primary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), ref.DocumentID, ref.ProvisionRef,
		string(ref.InstrumentType), string(ref.Community), ref.Year, ref.Number,
		ref.InstrumentID(), ref.Article, ref.FullCitation, ref.Context,
		string(ref.Relationship), ref.IsPrimary)

	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("saving reference: %w", err)
	}
	return nil
}

// ListByDocument returns a document's references in insertion order.
func (s *referenceStore) ListByDocument(ctx context.Context, documentID string) ([]domain.StoredReference, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT document_id, provision_ref, instrument_type, community,
		       year, number, article, full_citation, context, relationship, is_primary
		FROM international_references WHERE document_id = ?
		ORDER BY rowid
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying references: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// ListByInstrument returns all references to one instrument across the
// corpus.
func (s *referenceStore) ListByInstrument(ctx context.Context, instrumentID string) ([]domain.StoredReference, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT document_id, provision_ref, instrument_type, community,
		       year, number, article, full_citation, context, relationship, is_primary
		FROM international_references WHERE instrument_id = ?
		ORDER BY document_id, rowid
	`, instrumentID)
	if err != nil {
		return nil, fmt.Errorf("querying references by instrument: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// scanReferences scans multiple reference rows.
func scanReferences(rows *sql.Rows) ([]domain.StoredReference, error) {
	var refs []domain.StoredReference //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r domain.StoredReference
		var instrumentType, community, relationship string
		if err := rows.Scan(&r.DocumentID, &r.ProvisionRef, &instrumentType, &community,
			&r.Year, &r.Number, &r.Article, &r.FullCitation, &r.Context,
			&relationship, &r.IsPrimary); err != nil {
			return nil, fmt.Errorf("scanning reference: %w", err)
		}
		r.InstrumentType = domain.InstrumentType(instrumentType)
		r.Community = domain.Community(community)
		r.Relationship = domain.Relationship(relationship)
		refs = append(refs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating references: %w", err)
	}

	return refs, nil
}

// ==================== Metadata Store ====================

// metadataStore implements driven.MetadataStore.
type metadataStore struct {
	q querier
}

var _ driven.MetadataStore = (*metadataStore)(nil)

// Set stores or updates a metadata key.
func (s *metadataStore) Set(ctx context.Context, key, value string) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO build_metadata (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)

	if err != nil {
		return fmt.Errorf("saving metadata: %w", err)
	}
	return nil
}

// Get retrieves a metadata value by key.
func (s *metadataStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.q.QueryRowContext(ctx,
		"SELECT value FROM build_metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("scanning metadata: %w", err)
	}
	return value, nil
}

// ==================== Search Index ====================

// searchIndex implements driven.SearchIndex over the FTS5 table.
type searchIndex struct {
	q querier
}

var _ driven.SearchIndex = (*searchIndex)(nil)

// Search runs a full-text query over provision titles and content,
// ranked by bm25.
func (s *searchIndex) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidInput
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	rows, err := s.q.QueryContext(ctx, `
		SELECT p.document_id, d.title, p.ref, p.title,
		       snippet(provisions_fts, 1, '>>', '<<', '...', 16),
		       bm25(provisions_fts)
		FROM provisions_fts
		JOIN provisions p ON p.id = provisions_fts.rowid
		JOIN documents d ON d.id = p.document_id
		WHERE provisions_fts MATCH ?
		  AND (? = '' OR p.document_id = ?)
		ORDER BY bm25(provisions_fts)
		LIMIT ? OFFSET ?
	`, query, opts.DocumentID, opts.DocumentID, limit, opts.Offset)
	if err != nil {
		// FTS5 rejects malformed match expressions at query time.
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}
	defer rows.Close()

	var results []domain.SearchResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r domain.SearchResult
		if err := rows.Scan(&r.DocumentID, &r.DocumentTitle, &r.ProvisionRef,
			&r.Title, &r.Snippet, &r.Score); err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search results: %w", err)
	}

	return results, nil
}
