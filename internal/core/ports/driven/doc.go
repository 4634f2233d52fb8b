// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - Fetcher: Polite retrieval of pages from the publication endpoint
//   - ActStore / ProvisionStore / DefinitionStore / ReferenceStore:
//     corpus persistence, scoped views of one relational store
//   - SearchIndex: Full-text search over provision content and titles
//   - MetadataStore: Build metadata key/value persistence
//   - TxRunner: Wraps a whole corpus load in one atomic transaction
//   - ConfigStore: Application configuration
package driven
