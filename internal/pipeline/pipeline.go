// Package pipeline sequences a full document analysis: citation
// extraction, discrepancy verification, plain-language rewriting and the
// deduplicated found-laws summary.
package pipeline

import (
	"context"

	"github.com/legisclaro/legisclaro/internal/analyzer"
	"github.com/legisclaro/legisclaro/internal/citations"
	"github.com/legisclaro/legisclaro/internal/portal"
	"github.com/legisclaro/legisclaro/internal/simplifier"
)

// lawStatus is fixed: the portal lookup confirms the statute exists but
// performs no currency check.
const lawStatus = "Vigente"

// FoundLaw is one deduplicated summary entry per statute the document
// cites and the portal resolved.
type FoundLaw struct {
	Name   string `json:"nome"`
	Link   string `json:"link"`
	Status string `json:"status"`
}

// Result is the terminal artifact of one document analysis.
// CitationCount is the raw pre-deduplication match count, so it is always
// at least len(FoundLaws).
type Result struct {
	SimplifiedText string                 `json:"textoSimplificado"`
	Discrepancies  []analyzer.Discrepancy `json:"discrepancias"`
	FoundLaws      []FoundLaw             `json:"leisEncontradas"`
	CitationCount  int                    `json:"citacoesEncontradas"`
}

// Pipeline wires the analysis stages together. A Pipeline holds only
// read-only configuration and collaborators, so one instance may serve
// concurrent documents; each Process call is independent.
type Pipeline struct {
	analyzer   *analyzer.Analyzer
	simplifier *simplifier.Simplifier
	portal     portal.Portal
}

// New assembles a Pipeline from its collaborators.
func New(a *analyzer.Analyzer, s *simplifier.Simplifier, p portal.Portal) *Pipeline {
	return &Pipeline{analyzer: a, simplifier: s, portal: p}
}

// Process runs the full analysis over one document. Stages run strictly
// sequentially. Discrepancy analysis and statute retrieval degrade to
// empty results on failure, but a simplification failure aborts the run:
// there is no acceptable fallback for the rewritten text.
func (p *Pipeline) Process(ctx context.Context, text string) (*Result, error) {
	cits := citations.Extract(text)

	discrepancies := p.analyzer.Analyze(ctx, text, cits)

	simplified, err := p.simplifier.Simplify(ctx, text)
	if err != nil {
		return nil, err
	}

	return &Result{
		SimplifiedText: simplified,
		Discrepancies:  discrepancies,
		FoundLaws:      p.collectFoundLaws(ctx, cits),
		CitationCount:  len(cits),
	}, nil
}

// collectFoundLaws walks law-like citations, resolves each to its
// canonical id once and asks the portal for title and link. Failed
// lookups are omitted, not retried.
func (p *Pipeline) collectFoundLaws(ctx context.Context, cits []citations.Citation) []FoundLaw {
	found := []FoundLaw{}
	seen := map[citations.LawID]bool{}

	for _, cit := range cits {
		if !citations.LawLike(cit) {
			continue
		}
		id, ok := citations.Canonicalize(cit.Text)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true

		content := p.portal.Fetch(ctx, id)
		if content == nil {
			continue
		}
		found = append(found, FoundLaw{
			Name:   content.Title,
			Link:   content.URL,
			Status: lawStatus,
		})
	}
	return found
}
