// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the Ghana legislation corpus. It exposes search, citation and corpus
// lookup operations to AI assistants.
package mcp

import "errors"

// Required port errors returned by Ports.Validate.
var (
	ErrMissingSearchService   = errors.New("mcp: search service is required")
	ErrMissingCitationService = errors.New("mcp: citation service is required")
	ErrMissingActStore        = errors.New("mcp: act store is required")
)
