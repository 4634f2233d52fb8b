package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driven"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driving"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs full-text queries over provision content.
type SearchService struct {
	index driven.SearchIndex
}

// NewSearchService creates a new search service.
func NewSearchService(index driven.SearchIndex) *SearchService {
	return &SearchService{index: index}
}

// Search queries the full-text index. An empty query returns no results
// rather than an error.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	results, err := s.index.Search(ctx, query, opts)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Info("Search results: %d", len(results))
	return results, nil
}
