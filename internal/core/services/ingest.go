package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driven"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driving"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/crossref"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/dedupe"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/logger"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/parser"
)

// updateCheckTimeout bounds each index-page fetch on the update path.
const updateCheckTimeout = 15 * time.Second

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the ingestion pipeline: index discovery, polite
// per-act fetching, multi-strategy parsing, deduplication,
// cross-reference extraction and one atomic corpus load. Documents are
// processed strictly sequentially in discovery order.
type IngestService struct {
	fetcher  driven.Fetcher
	tx       driven.TxRunner
	acts     driven.ActStore
	metadata driven.MetadataStore
	parser   *parser.Parser
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	fetcher driven.Fetcher,
	tx driven.TxRunner,
	acts driven.ActStore,
	metadata driven.MetadataStore,
) *IngestService {
	return &IngestService{
		fetcher:  fetcher,
		tx:       tx,
		acts:     acts,
		metadata: metadata,
		parser:   parser.New(),
	}
}

// ingestItem is one fully processed document awaiting the corpus load.
type ingestItem struct {
	act        *domain.Act
	references []domain.StoredReference
	stats      dedupe.Stats
}

// Ingest discovers acts on the index page, processes each one and loads
// the whole corpus in a single transaction. Retrieval misses (404 or a
// redirect) degrade to stub records so the next run skips the item;
// transport exhaustion aborts the run without touching committed state.
func (s *IngestService) Ingest(ctx context.Context, indexURL string) (*driving.IngestReport, error) {
	logger.Section("Corpus Ingestion")
	logger.Info("Index page: %s", indexURL)

	entries, err := s.discover(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	logger.Info("Discovered %d acts", len(entries))

	report := &driving.IngestReport{Discovered: len(entries)}

	var items []ingestItem
	for _, entry := range entries {
		item, err := s.processEntry(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("processing %q: %w", entry.Title, err)
		}
		items = append(items, *item)

		if item.act.Status == domain.StatusUnavailable {
			report.Stubs++
		}
		report.Provisions += len(item.act.Provisions)
		report.Definitions += len(item.act.Definitions)
		report.References += len(item.references)
		report.DuplicateProvisions += item.stats.Duplicates
		report.ConflictingDuplicate += item.stats.Conflicting
	}

	if err := s.load(ctx, indexURL, items); err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	report.Loaded = len(items)

	logger.Info("Loaded %d documents (%d stubs, %d provisions, %d references)",
		report.Loaded, report.Stubs, report.Provisions, report.References)
	return report, nil
}

// discover fetches the index page and parses its act listing.
func (s *IngestService) discover(ctx context.Context, indexURL string) ([]domain.ActIndexEntry, error) {
	res, err := s.fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetching index page: %w", err)
	}
	if res.Status != 200 {
		return nil, fmt.Errorf("%w: index page returned status %d", domain.ErrNotFound, res.Status)
	}
	return parser.ParseIndex(res.Body, indexURL), nil
}

// processEntry runs one document through fetch, parse, dedupe and
// cross-reference extraction.
func (s *IngestService) processEntry(ctx context.Context, entry domain.ActIndexEntry) (*ingestItem, error) {
	logger.Debug("Fetching %q (%s)", entry.Title, entry.SourceURL)

	res, err := s.fetcher.Fetch(ctx, entry.SourceURL)
	if err != nil {
		// Retries exhausted. Abort before anything is committed.
		return nil, err
	}

	// Missing or moved pages become stub records so the item is not
	// refetched on the next run.
	if res.Status == 404 || res.Status == 301 || res.Status == 302 {
		logger.Warn("Act %q unavailable (status %d), recording stub", entry.Title, res.Status)
		return &ingestItem{act: stubAct(entry)}, nil
	}
	if res.Status != 200 {
		return nil, fmt.Errorf("unexpected status %d for %s", res.Status, entry.SourceURL)
	}

	act := s.parser.Parse(res.Body, entry.Year, entry.ActNumber, entry.Title)
	act.SourceURL = entry.SourceURL

	deduped, stats := dedupe.Provisions(act.Provisions)
	act.Provisions = deduped
	if stats.Duplicates > 0 {
		logger.Warn("Act %q: %d duplicate provision refs (%d conflicting)",
			entry.Title, stats.Duplicates, stats.Conflicting)
	}
	act.Definitions = parser.ExtractDefinitions(act.Provisions)

	return &ingestItem{
		act:        act,
		references: extractReferences(act),
		stats:      stats,
	}, nil
}

// extractReferences runs the cross-reference extractor over every
// provision and assigns primary-implementation flags: the first
// implements-classified reference to each instrument, in document order,
// is the document's primary transposition. References-classified
// mentions are never candidates.
func extractReferences(act *domain.Act) []domain.StoredReference {
	var out []domain.StoredReference
	primarySeen := make(map[string]bool)

	for _, p := range act.Provisions {
		for _, ref := range crossref.Extract(p.Content) {
			if ref.Relationship == domain.RelationshipImplements && !primarySeen[ref.InstrumentID()] {
				ref.IsPrimary = true
				primarySeen[ref.InstrumentID()] = true
			}
			out = append(out, domain.StoredReference{
				Reference:    ref,
				DocumentID:   act.ID,
				ProvisionRef: p.Ref,
			})
		}
	}

	return out
}

// stubAct builds the minimal record persisted for an unavailable page.
func stubAct(entry domain.ActIndexEntry) *domain.Act {
	return &domain.Act{
		ID:        domain.ActID(entry.ActNumber, entry.Year),
		Title:     entry.Title,
		ShortName: parser.ShortName(entry.Title, entry.Year),
		ActNumber: entry.ActNumber,
		Year:      entry.Year,
		Status:    domain.StatusUnavailable,
		SourceURL: entry.SourceURL,
	}
}

// load writes every processed document inside one transaction. Duplicate
// definition and reference rows are skipped per record; any other
// failure rolls the whole run back.
func (s *IngestService) load(ctx context.Context, indexURL string, items []ingestItem) error {
	return s.tx.InTx(ctx, func(tx driven.CorpusTx) error {
		for _, item := range items {
			if err := tx.Acts().Save(ctx, item.act); err != nil {
				return fmt.Errorf("saving act %s: %w", item.act.ID, err)
			}

			// Re-ingesting a document replaces its provisions wholesale.
			if err := tx.Provisions().DeleteByDocument(ctx, item.act.ID); err != nil {
				return err
			}
			for _, p := range item.act.Provisions {
				if err := tx.Provisions().Save(ctx, item.act.ID, p); err != nil {
					return fmt.Errorf("saving provision %s %s: %w", item.act.ID, p.Ref, err)
				}
			}

			for _, d := range item.act.Definitions {
				err := tx.Definitions().Save(ctx, item.act.ID, d)
				if errors.Is(err, domain.ErrAlreadyExists) {
					logger.Debug("Skipping duplicate definition %q in %s", d.Term, item.act.ID)
					continue
				}
				if err != nil {
					return fmt.Errorf("saving definition %q: %w", d.Term, err)
				}
			}

			for _, r := range item.references {
				err := tx.References().Save(ctx, r)
				if errors.Is(err, domain.ErrAlreadyExists) {
					logger.Debug("Skipping duplicate reference %s in %s", r.InstrumentID(), item.act.ID)
					continue
				}
				if err != nil {
					return fmt.Errorf("saving reference %s: %w", r.InstrumentID(), err)
				}
			}
		}

		if err := tx.Metadata().Set(ctx, "last_ingest", time.Now().UTC().Format(time.RFC3339)); err != nil {
			return err
		}
		return tx.Metadata().Set(ctx, "index_url", indexURL)
	})
}

// CheckUpdates compares the current index page against the stored corpus
// without writing anything. The index fetch is bounded by a hard
// wall-clock timeout; expiry is fatal.
func (s *IngestService) CheckUpdates(ctx context.Context, indexURL string) (*driving.UpdateReport, error) {
	logger.Section("Update Check")

	fetchCtx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	entries, err := s.discover(fetchCtx, indexURL)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: index fetch exceeded %s", domain.ErrUpdateTimeout, updateCheckTimeout)
	}
	if err != nil {
		return nil, err
	}

	stored, err := s.acts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stored acts: %w", err)
	}
	known := make(map[string]domain.Act, len(stored))
	for _, act := range stored {
		known[act.ID] = act
	}

	report := &driving.UpdateReport{}
	for _, entry := range entries {
		id := domain.ActID(entry.ActNumber, entry.Year)
		existing, ok := known[id]
		switch {
		case !ok:
			report.New = append(report.New, entry)
		case existing.Title != entry.Title:
			report.Changed = append(report.Changed, entry)
		default:
			report.Known++
		}
	}

	logger.Info("Update check: %d known, %d new, %d changed",
		report.Known, len(report.New), len(report.Changed))
	return report, nil
}
