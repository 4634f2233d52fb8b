package mcp

import (
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driven"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driving"
)

// Ports aggregates the services and read-only stores the MCP server
// serves from. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Search provides full-text queries over provisions.
	Search driving.SearchService

	// Citation parses, validates and formats citations.
	Citation driving.CitationService

	// Acts, Provisions, Definitions and References give the lookup tools
	// read-only corpus access.
	Acts        driven.ActStore
	Provisions  driven.ProvisionStore
	Definitions driven.DefinitionStore
	References  driven.ReferenceStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Citation == nil {
		return ErrMissingCitationService
	}
	if p.Acts == nil {
		return ErrMissingActStore
	}
	// Provision, definition and reference stores are optional; their
	// tools degrade to empty results when unset.
	return nil
}
