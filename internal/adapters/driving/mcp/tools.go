package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

// SearchInput is the input schema for the search_legislation tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"the search query over provision text"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	DocumentID string `json:"document_id,omitempty" jsonschema:"restrict the search to one act, e.g. act-843-2012"`
}

// SearchOutput is the output schema for the search_legislation tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID    string  `json:"document_id"`
	DocumentTitle string  `json:"document_title"`
	ProvisionRef  string  `json:"provision_ref"`
	Title         string  `json:"title,omitempty"`
	Snippet       string  `json:"snippet"`
	Score         float64 `json:"score"`
}

// GetActInput is the input schema for the get_act tool.
type GetActInput struct {
	ID        string `json:"id,omitempty" jsonschema:"the act id, e.g. act-843-2012"`
	ActNumber int    `json:"act_number,omitempty" jsonschema:"the instrument number, used with year when id is not given"`
	Year      int    `json:"year,omitempty" jsonschema:"the year of enactment"`
}

// ActOutput is the act metadata returned by get_act.
type ActOutput struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	ShortName  string   `json:"short_name,omitempty"`
	ActNumber  int      `json:"act_number"`
	Year       int      `json:"year"`
	Status     string   `json:"status"`
	IssuedDate string   `json:"issued_date,omitempty"`
	SourceURL  string   `json:"source_url,omitempty"`
	Provisions []string `json:"provisions"`
}

// GetProvisionInput is the input schema for the get_provision tool.
type GetProvisionInput struct {
	DocumentID string `json:"document_id" jsonschema:"the act id, e.g. act-843-2012"`
	Ref        string `json:"ref" jsonschema:"the provision reference, e.g. s1 or s1(2)"`
}

// ProvisionOutput is a single provision with its ancestry context.
type ProvisionOutput struct {
	DocumentID string `json:"document_id"`
	Ref        string `json:"ref"`
	Part       string `json:"part,omitempty"`
	Chapter    string `json:"chapter,omitempty"`
	Section    string `json:"section,omitempty"`
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
}

// ListDefinitionsInput is the input schema for the list_definitions tool.
type ListDefinitionsInput struct {
	DocumentID string `json:"document_id,omitempty" jsonschema:"list the defined terms of one act"`
	Term       string `json:"term,omitempty" jsonschema:"look one term up across the whole corpus instead"`
}

// DefinitionOutput is one defined term.
type DefinitionOutput struct {
	Term            string `json:"term"`
	Definition      string `json:"definition"`
	SourceProvision string `json:"source_provision,omitempty"`
}

// ListDefinitionsOutput is the output schema for list_definitions.
type ListDefinitionsOutput struct {
	Definitions []DefinitionOutput `json:"definitions"`
	Count       int                `json:"count"`
}

// CitationInput is the input schema for validate_citation.
type CitationInput struct {
	Citation string `json:"citation" jsonschema:"the free-text citation, e.g. 'Data Protection Act 2012, s. 20(1)'"`
}

// ValidateCitationOutput is the output schema for validate_citation.
type ValidateCitationOutput struct {
	Valid           bool     `json:"valid"`
	Kind            string   `json:"kind,omitempty"`
	DocumentExists  bool     `json:"document_exists"`
	ProvisionExists bool     `json:"provision_exists"`
	DocumentTitle   string   `json:"document_title,omitempty"`
	Status          string   `json:"status,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

// FormatCitationInput is the input schema for format_citation.
type FormatCitationInput struct {
	Citation string `json:"citation" jsonschema:"the free-text citation to reformat"`
	Style    string `json:"style,omitempty" jsonschema:"output style: full, short or pinpoint (default full)"`
}

// FormatCitationOutput is the output schema for format_citation.
type FormatCitationOutput struct {
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}

// ReferencesInput is the input schema for find_international_references.
type ReferencesInput struct {
	DocumentID   string `json:"document_id,omitempty" jsonschema:"list references made by one act"`
	InstrumentID string `json:"instrument_id,omitempty" jsonschema:"list references to one instrument across the corpus, e.g. regulation:2016/679"`
}

// ReferenceOutput is one extracted international reference.
type ReferenceOutput struct {
	DocumentID   string `json:"document_id"`
	ProvisionRef string `json:"provision_ref"`
	InstrumentID string `json:"instrument_id"`
	Community    string `json:"community"`
	Article      string `json:"article,omitempty"`
	FullCitation string `json:"full_citation"`
	Context      string `json:"context,omitempty"`
	Relationship string `json:"relationship"`
	IsPrimary    bool   `json:"is_primary"`
}

// ReferencesOutput is the output schema for find_international_references.
type ReferencesOutput struct {
	References []ReferenceOutput `json:"references"`
	Count      int               `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_legislation",
		Description: "Full-text search over the provisions of Ghanaian acts",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_act",
		Description: "Retrieve an act's metadata and provision references by id or by act number and year",
	}, s.handleGetAct)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_provision",
		Description: "Retrieve the full text of one provision of an act",
	}, s.handleGetProvision)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_definitions",
		Description: "List the defined terms of an act, or look a term up across the corpus",
	}, s.handleListDefinitions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_citation",
		Description: "Parse a free-text citation and check it against the corpus",
	}, s.handleValidateCitation)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_citation",
		Description: "Reformat a free-text citation into a canonical style",
	}, s.handleFormatCitation)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_international_references",
		Description: "Find references to EU, AU and Council of Europe instruments in the corpus",
	}, s.handleFindReferences)
}

// handleSearch handles the search_legislation tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	opts := domain.SearchOptions{Limit: limit, DocumentID: input.DocumentID}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			DocumentID:    results[i].DocumentID,
			DocumentTitle: results[i].DocumentTitle,
			ProvisionRef:  results[i].ProvisionRef,
			Title:         results[i].Title,
			Snippet:       results[i].Snippet,
			Score:         results[i].Score,
		}
	}

	return nil, output, nil
}

// handleGetAct handles the get_act tool invocation.
func (s *Server) handleGetAct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetActInput,
) (*mcp.CallToolResult, ActOutput, error) {
	var (
		act *domain.Act
		err error
	)
	switch {
	case input.ID != "":
		act, err = s.ports.Acts.Get(ctx, input.ID)
	case input.ActNumber > 0 && input.Year > 0:
		act, err = s.ports.Acts.FindByNumberYear(ctx, input.ActNumber, input.Year)
	default:
		return nil, ActOutput{}, fmt.Errorf("%w: either id or act_number and year are required", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, ActOutput{}, err
	}

	output := ActOutput{
		ID:         act.ID,
		Title:      act.Title,
		ShortName:  act.ShortName,
		ActNumber:  act.ActNumber,
		Year:       act.Year,
		Status:     act.Status,
		IssuedDate: act.IssuedDate,
		SourceURL:  act.SourceURL,
		Provisions: make([]string, len(act.Provisions)),
	}
	for i := range act.Provisions {
		output.Provisions[i] = act.Provisions[i].Ref
	}

	return nil, output, nil
}

// handleGetProvision handles the get_provision tool invocation.
func (s *Server) handleGetProvision(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetProvisionInput,
) (*mcp.CallToolResult, ProvisionOutput, error) {
	if s.ports.Provisions == nil {
		return nil, ProvisionOutput{}, domain.ErrNotFound
	}

	p, err := s.ports.Provisions.Get(ctx, input.DocumentID, input.Ref)
	if err != nil {
		return nil, ProvisionOutput{}, err
	}

	return nil, ProvisionOutput{
		DocumentID: input.DocumentID,
		Ref:        p.Ref,
		Part:       p.Part,
		Chapter:    p.Chapter,
		Section:    p.Section,
		Title:      p.Title,
		Content:    p.Content,
	}, nil
}

// handleListDefinitions handles the list_definitions tool invocation.
func (s *Server) handleListDefinitions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDefinitionsInput,
) (*mcp.CallToolResult, ListDefinitionsOutput, error) {
	if s.ports.Definitions == nil {
		return nil, ListDefinitionsOutput{}, nil
	}

	var (
		defs []domain.Definition
		err  error
	)
	switch {
	case input.Term != "":
		defs, err = s.ports.Definitions.Lookup(ctx, input.Term)
	case input.DocumentID != "":
		defs, err = s.ports.Definitions.List(ctx, input.DocumentID)
	default:
		return nil, ListDefinitionsOutput{}, fmt.Errorf("%w: either document_id or term is required", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, ListDefinitionsOutput{}, err
	}

	output := ListDefinitionsOutput{
		Definitions: make([]DefinitionOutput, len(defs)),
		Count:       len(defs),
	}
	for i, d := range defs {
		output.Definitions[i] = DefinitionOutput{
			Term:            d.Term,
			Definition:      d.Definition,
			SourceProvision: d.SourceProvision,
		}
	}

	return nil, output, nil
}

// handleValidateCitation handles the validate_citation tool invocation.
// Invalid citations are a structured result, never a tool error.
func (s *Server) handleValidateCitation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CitationInput,
) (*mcp.CallToolResult, ValidateCitationOutput, error) {
	result, err := s.ports.Citation.Validate(ctx, input.Citation)
	if err != nil {
		return nil, ValidateCitationOutput{}, err
	}

	return nil, ValidateCitationOutput{
		Valid:           result.Citation.Valid,
		Kind:            string(result.Citation.Kind),
		DocumentExists:  result.DocumentExists,
		ProvisionExists: result.ProvisionExists,
		DocumentTitle:   result.DocumentTitle,
		Status:          result.Status,
		Warnings:        result.Warnings,
	}, nil
}

// handleFormatCitation handles the format_citation tool invocation.
func (s *Server) handleFormatCitation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FormatCitationInput,
) (*mcp.CallToolResult, FormatCitationOutput, error) {
	style := domain.CitationStyle(input.Style)
	if input.Style == "" {
		style = domain.StyleFull
	}

	c := s.ports.Citation.Parse(input.Citation)
	if !c.Valid {
		return nil, FormatCitationOutput{Valid: false, Error: c.Err}, nil
	}

	formatted, err := s.ports.Citation.Format(ctx, c, style)
	if err != nil {
		return nil, FormatCitationOutput{}, err
	}

	return nil, FormatCitationOutput{Formatted: formatted, Valid: true}, nil
}

// handleFindReferences handles the find_international_references tool
// invocation.
func (s *Server) handleFindReferences(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReferencesInput,
) (*mcp.CallToolResult, ReferencesOutput, error) {
	if s.ports.References == nil {
		return nil, ReferencesOutput{}, nil
	}

	var (
		refs []domain.StoredReference
		err  error
	)
	switch {
	case input.InstrumentID != "":
		refs, err = s.ports.References.ListByInstrument(ctx, input.InstrumentID)
	case input.DocumentID != "":
		refs, err = s.ports.References.ListByDocument(ctx, input.DocumentID)
	default:
		return nil, ReferencesOutput{}, fmt.Errorf("%w: either document_id or instrument_id is required", domain.ErrInvalidInput)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, ReferencesOutput{}, err
	}

	output := ReferencesOutput{
		References: make([]ReferenceOutput, len(refs)),
		Count:      len(refs),
	}
	for i, r := range refs {
		output.References[i] = ReferenceOutput{
			DocumentID:   r.DocumentID,
			ProvisionRef: r.ProvisionRef,
			InstrumentID: r.InstrumentID(),
			Community:    string(r.Community),
			Article:      r.Article,
			FullCitation: r.FullCitation,
			Context:      r.Context,
			Relationship: string(r.Relationship),
			IsPrimary:    r.IsPrimary,
		}
	}

	return nil, output, nil
}
