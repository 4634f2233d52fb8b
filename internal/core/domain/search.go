package domain

// SearchOptions controls a full-text query over the corpus.
type SearchOptions struct {
	// Limit caps the number of results. Zero means the service default.
	Limit int

	// Offset skips results for paging.
	Offset int

	// DocumentID restricts the search to one act when set.
	DocumentID string
}

// SearchResult is one provision matched by a full-text query.
type SearchResult struct {
	DocumentID    string
	DocumentTitle string
	ProvisionRef  string
	Title         string

	// Snippet is a highlighted excerpt from the matched content.
	Snippet string

	// Score is the BM25 rank; lower is better, as reported by the index.
	Score float64
}
