// Package domain defines the core business entities for the Ghana
// legislation corpus.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Act: A parsed statute with its provisions and definitions
//   - Provision: An addressable unit of a statute
//   - Definition: A defined term extracted from an interpretation provision
//   - Reference: A detected citation of a foreign or international instrument
//   - ParsedCitation / ValidationResult: query-time citation results
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
