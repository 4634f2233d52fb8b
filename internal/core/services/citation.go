package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/citation"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driven"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driving"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/logger"
)

// Ensure CitationService implements the interface.
var _ driving.CitationService = (*CitationService)(nil)

// CitationService parses, validates and formats statute citations
// against the corpus. It owns no mutable state and is safe for
// concurrent callers.
type CitationService struct {
	acts       driven.ActStore
	provisions driven.ProvisionStore
}

// NewCitationService creates a new citation service.
func NewCitationService(acts driven.ActStore, provisions driven.ProvisionStore) *CitationService {
	return &CitationService{acts: acts, provisions: provisions}
}

// Parse classifies a free-text citation string.
func (s *CitationService) Parse(raw string) domain.ParsedCitation {
	return citation.Parse(raw)
}

// Validate parses the citation and checks it against the corpus. Grammar
// mismatches and lookup misses degrade to a structured result with
// warnings; only store failures surface as errors.
func (s *CitationService) Validate(ctx context.Context, raw string) (*domain.ValidationResult, error) {
	c := citation.Parse(raw)
	result := &domain.ValidationResult{Citation: c}

	if !c.Valid {
		result.Warnings = append(result.Warnings, c.Err)
		return result, nil
	}

	act, err := s.resolveAct(ctx, c)
	if errors.Is(err, domain.ErrNotFound) {
		result.Warnings = append(result.Warnings, s.missWarning(c))
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving act: %w", err)
	}

	result.DocumentExists = true
	result.DocumentTitle = act.Title
	result.Status = act.Status
	if act.Status == domain.StatusRepealed {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s has been repealed", act.Title))
	}

	if c.Section == "" {
		return result, nil
	}

	exists, err := s.provisionExists(ctx, act.ID, c)
	if err != nil {
		return nil, fmt.Errorf("checking provision: %w", err)
	}
	result.ProvisionExists = exists
	if !exists {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("section %s not found in %s", c.Pinpoint(), act.Title))
	}

	return result, nil
}

// resolveAct finds the cited act: by instrument number and year when the
// grammar captured them, by title substring otherwise.
func (s *CitationService) resolveAct(ctx context.Context, c domain.ParsedCitation) (*domain.Act, error) {
	if c.ActNumber > 0 && c.Year > 0 {
		return s.acts.FindByNumberYear(ctx, c.ActNumber, c.Year)
	}
	return s.acts.FindByTitle(ctx, c.Title, c.Year)
}

// missWarning names what the lookup failed on.
func (s *CitationService) missWarning(c domain.ParsedCitation) string {
	if c.ActNumber > 0 && c.Year > 0 {
		return fmt.Sprintf("no act %d of %d in the corpus", c.ActNumber, c.Year)
	}
	return fmt.Sprintf("no act matching %q (%d) in the corpus", c.Title, c.Year)
}

// provisionExists checks the cited provision against the document's
// stored references. Besides the exact reference it accepts the bare
// section, a parenthesis-normalized variant, and, only when the citation
// pins no subsection or paragraph, any reference sharing the section.
func (s *CitationService) provisionExists(ctx context.Context, documentID string, c domain.ParsedCitation) (bool, error) {
	refs, err := s.provisions.Refs(ctx, documentID)
	if err != nil {
		return false, err
	}

	exact := "s" + c.Pinpoint()
	bare := "s" + c.Section
	normalized := normalizeRef(exact)
	prefixOK := c.Subsection == "" && c.Paragraph == ""

	for _, ref := range refs {
		if ref == exact || ref == bare {
			return true, nil
		}
		if normalizeRef(ref) == normalized {
			return true, nil
		}
		if prefixOK && strings.HasPrefix(ref, bare+"(") {
			return true, nil
		}
	}
	return false, nil
}

var refPunctPattern = regexp.MustCompile(`[()\s.]+`)

// normalizeRef strips parentheses, dots and spacing so "s1(2)(a)" and
// "s1.2.a" compare equal.
func normalizeRef(ref string) string {
	return refPunctPattern.ReplaceAllString(strings.ToLower(ref), "")
}

// titleSuffixPattern strips a trailing ", <year> (Act <n>)" tail from a
// stored long title, leaving the core name used in formatted citations.
var titleSuffixPattern = regexp.MustCompile(`\s*,?\s+\d{4}\s*(\(Act\s+\d+\))?$`)

// Format renders a parsed citation in the requested style, resolving the
// document title from the corpus when the grammar did not capture one.
func (s *CitationService) Format(ctx context.Context, c domain.ParsedCitation, style domain.CitationStyle) (string, error) {
	if c.Valid && c.Title == "" && style != domain.StylePinpoint {
		act, err := s.resolveAct(ctx, c)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("formatting unresolvable citation act-%d-%d", c.ActNumber, c.Year)
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("resolving act: %w", err)
		}
		c.Title = titleSuffixPattern.ReplaceAllString(act.Title, "")
		if c.Year == 0 {
			c.Year = act.Year
		}
	}

	return citation.Format(c, style), nil
}
