// Package simplifier rewrites legal prose into plain language with a
// single model call.
package simplifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/legisclaro/legisclaro/internal/llm"
)

const rewritePromptTemplate = `Você é um especialista em comunicação popular e direito.

Transforme o texto jurídico em linguagem SIMPLES e CLARA.

REGRAS:
1. Use palavras do dia a dia
2. Frases curtas e diretas
3. Explique termos técnicos
4. Mantenha números e prazos exatos
5. NÃO omita informações importantes
6. Se mencionar artigos, mantenha mas explique

TEXTO JURÍDICO:
%s

TEXTO SIMPLIFICADO:`

// Simplifier produces the plain-language rewrite of a document.
type Simplifier struct {
	provider llm.Provider
	model    string
}

// New creates a Simplifier using the given model backend.
func New(provider llm.Provider, model string) *Simplifier {
	return &Simplifier{provider: provider, model: model}
}

// Simplify rewrites text and returns the trimmed model output. There is
// no safe default rewrite, so unlike discrepancy analysis a model failure
// here propagates to the caller.
func (s *Simplifier) Simplify(ctx context.Context, text string) (string, error) {
	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model:    s.model,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: fmt.Sprintf(rewritePromptTemplate, text)}},
	})
	if err != nil {
		return "", fmt.Errorf("simplifying text: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}
