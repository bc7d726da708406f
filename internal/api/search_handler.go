// File path: internal/api/search_handler.go
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wellnessgarden/guide/internal/common"
	"github.com/wellnessgarden/guide/internal/kb"
	"github.com/wellnessgarden/guide/internal/retriever"
)

type searchHit struct {
	Source  string  `json:"source"`
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	Score   int     `json:"score"`
	Density float64 `json:"density"`
}

// handleSearch exposes the lexical retriever directly, mainly for tuning
// and debugging the knowledge base.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing q parameter"))
		return
	}
	limit := retriever.DefaultMaxResults
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	entries, err := s.library.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("load knowledge base: %w", err))
		return
	}
	matches := retriever.Rank(kb.Tokenize(query), entries, limit)
	logger.Debug("api: search request", "query", query, "limit", limit, "results", len(matches))
	hits := make([]searchHit, 0, len(matches))
	for _, match := range matches {
		hits = append(hits, searchHit{
			Source:  match.Entry.Source,
			Title:   match.Entry.Title,
			Body:    match.Entry.Body,
			Score:   match.Score,
			Density: match.Density,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": hits})
}

func (s *Server) handleKnowledgeStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.library.Stats())
}
