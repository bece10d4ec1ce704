// Package analyzer cross-checks a document's legal citations against the
// statute text they cite and classifies each one with a language model.
package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/legisclaro/legisclaro/internal/citations"
	"github.com/legisclaro/legisclaro/internal/llm"
	"github.com/legisclaro/legisclaro/internal/portal"
)

// promptContentLen caps how much of each fetched statute goes into the
// verification prompt; the stored content is longer (see portal).
const promptContentLen = 2000

// verificationTemperature keeps the model literal: the task is comparing
// text against statute content, not writing.
const verificationTemperature = 0.2

// ErrUnparseable reports that the model's output could not be read as the
// expected JSON shape. Analyze swallows it (see below); it exists so tests
// and future callers can tell "nothing found" from "output was garbage".
var ErrUnparseable = errors.New("analyzer: model output is not valid discrepancy JSON")

// Analyzer verifies citations against fetched statute content.
type Analyzer struct {
	provider llm.Provider
	model    string
	portal   portal.Portal
}

// New creates an Analyzer using the given model backend and statute portal.
func New(provider llm.Provider, model string, p portal.Portal) *Analyzer {
	return &Analyzer{provider: provider, model: model, portal: p}
}

// Analyze classifies every citation in text. It never returns an error
// and the result is never nil: a model or parse failure is logged and
// yields an empty list, leaving the rest of the pipeline to finish. A
// caller therefore cannot distinguish "analysis failed" from "no issues
// found"; that ambiguity is part of the contract.
func (a *Analyzer) Analyze(ctx context.Context, text string, cits []citations.Citation) []Discrepancy {
	statuteBlob := a.collectStatutes(ctx, cits)

	citJSON, err := json.MarshalIndent(cits, "", "  ")
	if err != nil {
		log.Printf("analyzer: serializing citations: %v", err)
		return []Discrepancy{}
	}

	prompt := fmt.Sprintf(verificationPromptTemplate, citJSON, statuteBlob, text)

	resp, err := a.completeWithRetry(ctx, llm.CompletionRequest{
		Model:       a.model,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Temperature: verificationTemperature,
		JSONMode:    true,
	})
	if err != nil {
		log.Printf("analyzer: verification call failed: %v", err)
		return []Discrepancy{}
	}

	found, err := parseDiscrepancies(resp.Content)
	if err != nil {
		log.Printf("analyzer: %v", err)
		return []Discrepancy{}
	}
	return found
}

// collectStatutes reduces citations to distinct law ids, fetches each one
// sequentially and concatenates what came back, capped per statute.
func (a *Analyzer) collectStatutes(ctx context.Context, cits []citations.Citation) string {
	ids := map[citations.LawID]bool{}
	var order []citations.LawID
	for _, cit := range cits {
		id, ok := citations.Canonicalize(cit.Text)
		if !ok || ids[id] {
			continue
		}
		ids[id] = true
		order = append(order, id)
	}

	var sb strings.Builder
	for _, id := range order {
		content := a.portal.Fetch(ctx, id)
		if content == nil {
			continue
		}
		body := content.Content
		if len(body) > promptContentLen {
			// Rune-based cap: byte slicing would split accented
			// characters and shrink the effective budget.
			if runes := []rune(body); len(runes) > promptContentLen {
				body = string(runes[:promptContentLen])
			}
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("=", 60))
		sb.WriteString("\n")
		sb.WriteString(string(id))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("=", 60))
		sb.WriteString("\n")
		sb.WriteString(body)
	}

	if sb.Len() == 0 {
		return noStatuteContent
	}
	return sb.String()
}

// completeWithRetry backs off on rate-limit and overload errors; anything
// else fails immediately.
func (a *Analyzer) completeWithRetry(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	const maxRetries = 3
	backoff := 5 * time.Second

	for attempt := 0; ; attempt++ {
		resp, err := a.provider.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}

		errStr := err.Error()
		retryable := strings.Contains(errStr, "rate_limit") ||
			strings.Contains(errStr, "429") ||
			strings.Contains(errStr, "overloaded")
		if !retryable || attempt == maxRetries {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}
}

// discrepancyEnvelope is the exact shape the prompt demands.
type discrepancyEnvelope struct {
	Discrepancies *[]Discrepancy `json:"discrepancias"`
}

// parseDiscrepancies reads the model's answer. Responses wrapped in a
// fenced code block are unwrapped before parsing. A response that is not
// JSON, or that lacks the "discrepancias" key, is ErrUnparseable — an
// empty array in a well-formed response is a genuine "nothing found".
func parseDiscrepancies(raw string) ([]Discrepancy, error) {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "```") {
		lines := strings.Split(raw, "\n")
		if len(lines) >= 2 {
			end := len(lines)
			if strings.TrimSpace(lines[end-1]) == "```" {
				end--
			}
			raw = strings.Join(lines[1:end], "\n")
		}
	}

	var envelope discrepancyEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if envelope.Discrepancies == nil {
		return nil, fmt.Errorf("%w: missing discrepancias key", ErrUnparseable)
	}

	found := *envelope.Discrepancies
	if found == nil {
		found = []Discrepancy{}
	}
	return found, nil
}
