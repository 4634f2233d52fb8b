package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

func TestSearch_EmptyQueryReturnsNoResults(t *testing.T) {
	index := &mockSearchIndex{}
	svc := NewSearchService(index)

	results, err := svc.Search(context.Background(), "   ", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, index.queries, "index must not be queried for an empty string")
}

func TestSearch_DelegatesTrimmedQuery(t *testing.T) {
	index := &mockSearchIndex{
		results: []domain.SearchResult{
			{DocumentID: "act-843-2012", ProvisionRef: "s30", Snippet: ">>breach<<"},
		},
	}
	svc := NewSearchService(index)

	results, err := svc.Search(context.Background(), "  security breach  ", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "s30", results[0].ProvisionRef)
	assert.Equal(t, []string{"security breach"}, index.queries)
}

func TestSearch_WrapsIndexError(t *testing.T) {
	index := &mockSearchIndex{err: errors.New("index corrupted")}
	svc := NewSearchService(index)

	_, err := svc.Search(context.Background(), "breach", domain.SearchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search:")
}
