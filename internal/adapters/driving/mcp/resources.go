package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for legislation resources.
const uriScheme = "ghalaw://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing acts.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "acts",
		Name:        "acts",
		Description: "List of all acts in the corpus",
		MIMEType:    "application/json",
	}, s.handleActsResource)

	// Template for one act with its provisions and definitions.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "acts/{actId}",
		Name:        "act",
		Description: "Full content of one act: provisions and defined terms",
		MIMEType:    "application/json",
	}, s.handleActResource)
}

// handleActsResource returns summaries of all stored acts.
func (s *Server) handleActsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	acts, err := s.ports.Acts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing acts: %w", err)
	}

	type actInfo struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		ShortName string `json:"short_name,omitempty"`
		Year      int    `json:"year"`
		Status    string `json:"status"`
	}

	infos := make([]actInfo, len(acts))
	for i, act := range acts {
		infos[i] = actInfo{
			ID:        act.ID,
			Title:     act.Title,
			ShortName: act.ShortName,
			Year:      act.Year,
			Status:    act.Status,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling acts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleActResource returns one act with provisions and definitions.
func (s *Server) handleActResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	actID := extractActID(req.Params.URI)
	if actID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	act, err := s.ports.Acts.Get(ctx, actID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(act, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling act: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractActID extracts the act ID from a URI like ghalaw://acts/{actId}.
func extractActID(uri string) string {
	const prefix = uriScheme + "acts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
