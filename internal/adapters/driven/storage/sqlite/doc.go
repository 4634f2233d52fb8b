// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - ActStore: Act metadata persistence
//   - ProvisionStore: Provision persistence
//   - DefinitionStore: Defined-term persistence
//   - ReferenceStore: International reference persistence
//   - MetadataStore: Build metadata persistence
//   - SearchIndex: Full-text search over provision content (FTS5)
//   - TxRunner: Atomic corpus loads
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. The FTS5 index over provisions is kept in sync by
// triggers, so callers never write to it directly.
//
// # Data Location
//
// By default, the database is stored at ~/.ghana-law-mcp/corpus.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
