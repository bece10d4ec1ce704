package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/legisclaro/legisclaro/internal/analyzer"
	"github.com/legisclaro/legisclaro/internal/citations"
	"github.com/legisclaro/legisclaro/internal/llm"
	"github.com/legisclaro/legisclaro/internal/portal"
	"github.com/legisclaro/legisclaro/internal/simplifier"
)

// fakeProvider answers the verification call with fixed JSON and the
// rewrite call with a fixed simplification.
type fakeProvider struct {
	discrepancyJSON string
	simplified      string
	simplifyErr     error
}

func (f *fakeProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	prompt := req.Messages[0].Content
	if strings.Contains(prompt, "TEXTO SIMPLIFICADO") {
		if f.simplifyErr != nil {
			return nil, f.simplifyErr
		}
		return &llm.CompletionResponse{Content: f.simplified}, nil
	}
	return &llm.CompletionResponse{Content: f.discrepancyJSON}, nil
}

func (f *fakeProvider) Name() string { return "fake" }

type fakePortal struct {
	statutes map[citations.LawID]*portal.StatuteContent
	fetches  int
}

func (f *fakePortal) Search(_ context.Context, query string) (*portal.ResultRef, error) {
	return nil, portal.ErrNoResult
}

func (f *fakePortal) FetchText(_ context.Context, link string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakePortal) Fetch(_ context.Context, lawID citations.LawID) *portal.StatuteContent {
	f.fetches++
	return f.statutes[lawID]
}

func newPipeline(provider llm.Provider, p portal.Portal) *Pipeline {
	return New(
		analyzer.New(provider, "gpt-4o-mini", p),
		simplifier.New(provider, "gpt-4o-mini"),
		p,
	)
}

const contractText = `O contratante deverá observar o princípio da boa-fé conforme
o artigo 421 do Código Civil (Lei 10.406/2002). Em caso de mora, aplica-se o
artigo 394, com juros de 1% ao mês conforme o artigo 389. O consumidor tem os
direitos do artigo 6º da Lei 8.078/90 (Código de Defesa do Consumidor), sendo a
multa limitada a 2% nos termos do artigo 52 da Lei 8.078/90.`

func bothStatutes() map[citations.LawID]*portal.StatuteContent {
	return map[citations.LawID]*portal.StatuteContent{
		citations.CivilCodeID: {
			ID:      citations.CivilCodeID,
			Title:   "Lei nº 10.406, de 10 de janeiro de 2002",
			URL:     "https://portal.example/l10406",
			Content: "Art. 421. A liberdade contratual será exercida nos limites da função social do contrato.",
		},
		citations.ConsumerCodeID: {
			ID:      citations.ConsumerCodeID,
			Title:   "Lei nº 8.078, de 11 de setembro de 1990",
			URL:     "https://portal.example/l8078",
			Content: "Art. 6º São direitos básicos do consumidor.",
		},
	}
}

func TestProcessFullDocument(t *testing.T) {
	provider := &fakeProvider{
		discrepancyJSON: `{"discrepancias": [{"tipo": "ok", "gravidade": "baixa", "artigo": "Artigo 421", "textoOriginal": "artigo 421", "problemaEncontrado": null, "artigoCorreto": null, "sugestao": "citação correta"}]}`,
		simplified:      "Se você atrasar o pagamento, a multa é de 2% e os juros são de 1% ao mês.",
	}
	p := &fakePortal{statutes: bothStatutes()}

	result, err := newPipeline(provider, p).Process(context.Background(), contractText)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.CitationCount <= 2 {
		t.Errorf("citation count %d, want > 2", result.CitationCount)
	}
	if got := len(citations.Extract(contractText)); result.CitationCount != got {
		t.Errorf("citation count %d does not match raw match count %d", result.CitationCount, got)
	}

	// Every civil-code and consumer-code citation collapses onto one
	// canonical id each.
	if len(result.FoundLaws) != 2 {
		t.Errorf("found laws not deduplicated: %+v", result.FoundLaws)
	}
	seen := map[string]bool{}
	for _, law := range result.FoundLaws {
		if seen[law.Link] {
			t.Errorf("duplicate found-law entry %+v", law)
		}
		seen[law.Link] = true
		if law.Status != "Vigente" {
			t.Errorf("unexpected status %q", law.Status)
		}
	}

	if result.SimplifiedText == "" {
		t.Error("expected non-empty simplified text")
	}
	for _, literal := range []string{"2%", "1%"} {
		if !strings.Contains(result.SimplifiedText, literal) {
			t.Errorf("simplified text lost the literal %q", literal)
		}
	}

	if len(result.Discrepancies) != 1 {
		t.Errorf("expected 1 discrepancy, got %d", len(result.Discrepancies))
	}
}

func TestProcessSampleContract(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "testdata", "contrato.txt"))
	if err != nil {
		t.Fatalf("read sample contract: %v", err)
	}
	text := string(raw)

	provider := &fakeProvider{
		discrepancyJSON: `{"discrepancias": []}`,
		simplified:      "Se você atrasar o pagamento, a multa é de 2% e os juros são de 1% ao mês.",
	}
	p := &fakePortal{statutes: bothStatutes()}

	result, err := newPipeline(provider, p).Process(context.Background(), text)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if got := len(citations.Extract(text)); result.CitationCount != got || got <= 2 {
		t.Errorf("citation count %d, want raw match count %d (> 2)", result.CitationCount, got)
	}
	if len(result.FoundLaws) != 2 {
		t.Errorf("expected both statutes resolved once each, got %+v", result.FoundLaws)
	}
	for _, literal := range []string{"2%", "1%"} {
		if !strings.Contains(result.SimplifiedText, literal) {
			t.Errorf("simplified text lost the literal %q", literal)
		}
	}
}

func TestProcessFoundLawsDeduplicated(t *testing.T) {
	provider := &fakeProvider{discrepancyJSON: `{"discrepancias": []}`, simplified: "texto simples"}
	p := &fakePortal{statutes: bothStatutes()}

	text := "O CDC e o Código de Defesa do Consumidor garantem direitos; ver CDC."
	result, err := newPipeline(provider, p).Process(context.Background(), text)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(result.FoundLaws) != 1 {
		t.Fatalf("expected 1 deduplicated law, got %+v", result.FoundLaws)
	}
	if result.CitationCount < len(result.FoundLaws) {
		t.Errorf("citation count %d < found laws %d", result.CitationCount, len(result.FoundLaws))
	}
}

func TestProcessUnmappedLawOmitted(t *testing.T) {
	provider := &fakeProvider{discrepancyJSON: `{"discrepancias": []}`, simplified: "texto simples"}
	p := &fakePortal{statutes: bothStatutes()}

	text := "Aplica-se o Código Penal e o artigo 52 da Lei 8.078/90."
	result, err := newPipeline(provider, p).Process(context.Background(), text)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	// "Código Penal" has no canonical id, so only the consumer code resolves.
	if len(result.FoundLaws) != 1 {
		t.Fatalf("expected 1 found law, got %+v", result.FoundLaws)
	}
	if result.FoundLaws[0].Name != bothStatutes()[citations.ConsumerCodeID].Title {
		t.Errorf("unexpected found law %+v", result.FoundLaws[0])
	}
}

func TestProcessNoReferences(t *testing.T) {
	provider := &fakeProvider{discrepancyJSON: `{"discrepancias": []}`, simplified: "um texto simples"}
	p := &fakePortal{}

	result, err := newPipeline(provider, p).Process(context.Background(),
		"Um acordo simples entre duas pessoas, sem qualquer referência normativa.")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.CitationCount != 0 {
		t.Errorf("citation count = %d, want 0", result.CitationCount)
	}
	if len(result.FoundLaws) != 0 {
		t.Errorf("found laws = %+v, want empty", result.FoundLaws)
	}
	if len(result.Discrepancies) != 0 {
		t.Errorf("discrepancies = %+v, want empty", result.Discrepancies)
	}
	if result.SimplifiedText == "" {
		t.Error("expected non-empty simplified text")
	}
}

func TestProcessPortalUnreachable(t *testing.T) {
	provider := &fakeProvider{
		discrepancyJSON: `{"discrepancias": []}`,
		simplified:      "texto simples com 2% de multa",
	}
	p := &fakePortal{} // every Fetch returns nil

	result, err := newPipeline(provider, p).Process(context.Background(), contractText)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(result.FoundLaws) != 0 {
		t.Errorf("expected no found laws, got %+v", result.FoundLaws)
	}
	if len(result.Discrepancies) != 0 {
		t.Errorf("expected no discrepancies, got %+v", result.Discrepancies)
	}
	if result.SimplifiedText == "" {
		t.Error("simplification must not depend on portal availability")
	}
}

func TestProcessSimplifierFailureAborts(t *testing.T) {
	wantErr := errors.New("model unavailable")
	provider := &fakeProvider{discrepancyJSON: `{"discrepancias": []}`, simplifyErr: wantErr}

	_, err := newPipeline(provider, &fakePortal{}).Process(context.Background(), contractText)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected simplifier error to propagate, got %v", err)
	}
}
