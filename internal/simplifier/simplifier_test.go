package simplifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/legisclaro/legisclaro/internal/llm"
)

type mockProvider struct {
	response string
	err      error
	lastReq  llm.CompletionRequest
}

func (m *mockProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.response}, nil
}

func (m *mockProvider) Name() string { return "mock" }

func TestSimplifyTrimsResponse(t *testing.T) {
	provider := &mockProvider{response: "\n  Você deve pagar uma multa de 2% se atrasar.  \n"}
	s := New(provider, "gpt-4o-mini")

	got, err := s.Simplify(context.Background(), "O contratante incorrerá em multa de 2%.")
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if got != "Você deve pagar uma multa de 2% se atrasar." {
		t.Errorf("unexpected result %q", got)
	}
}

func TestSimplifyIncludesDocumentInPrompt(t *testing.T) {
	provider := &mockProvider{response: "ok"}
	s := New(provider, "gpt-4o-mini")

	doc := "Nos termos do artigo 394 do Código Civil."
	if _, err := s.Simplify(context.Background(), doc); err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if !strings.Contains(provider.lastReq.Messages[0].Content, doc) {
		t.Error("document text missing from rewrite prompt")
	}
}

func TestSimplifyPropagatesErrors(t *testing.T) {
	wantErr := errors.New("model unavailable")
	s := New(&mockProvider{err: wantErr}, "gpt-4o-mini")

	if _, err := s.Simplify(context.Background(), "texto"); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped model error, got %v", err)
	}
}
