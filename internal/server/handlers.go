package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/legisclaro/legisclaro/internal/analyzer"
	"github.com/legisclaro/legisclaro/internal/pipeline"
)

type processRequest struct {
	Text string `json:"texto"`
}

// processResponse is the wire shape of one analysis, matching the shape
// the web frontend consumes.
type processResponse struct {
	ID             string                 `json:"id"`
	SimplifiedText string                 `json:"textoSimplificado"`
	Discrepancies  []analyzer.Discrepancy `json:"discrepancias"`
	FoundLaws      []pipeline.FoundLaw    `json:"leisEncontradas"`
	CitationCount  int                    `json:"citacoesEncontradas"`
}

type errorResponse struct {
	Error string `json:"erro"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "API Analisador Jurídico",
		"status":  "online",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleProcess runs the full pipeline for one document. Empty input is
// rejected here; the pipeline itself assumes non-empty text.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "texto não fornecido"})
		return
	}

	result, err := s.pipeline.Process(r.Context(), req.Text)
	if err != nil {
		log.Printf("server: processing document: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "falha ao processar o documento"})
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		ID:             uuid.NewString(),
		SimplifiedText: result.SimplifiedText,
		Discrepancies:  result.Discrepancies,
		FoundLaws:      result.FoundLaws,
		CitationCount:  result.CitationCount,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}
