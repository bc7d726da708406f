// File path: internal/api/respond_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/wellnessgarden/guide/internal/common"
	"github.com/wellnessgarden/guide/internal/common/telemetry"
	"github.com/wellnessgarden/guide/internal/prompt"
	"github.com/wellnessgarden/guide/internal/respond"
	"github.com/wellnessgarden/guide/internal/safety"
)

func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("prompt required"))
		return
	}
	purpose, err := prompt.ParsePurpose(req.Purpose)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mood, err := prompt.ParseMood(req.Mood)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.responder.Respond(r.Context(), respond.Request{
		Prompt:  req.Prompt,
		Purpose: purpose,
		Mood:    mood,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, respondResponse{Result: result, Provider: s.responder.Provider()})
}

func (s *Server) handleStoryCheck(w http.ResponseWriter, r *http.Request) {
	var req storyCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	resp := storyCheckResponse{
		TitleSafe:   safety.IsSafe(req.Title),
		ContentSafe: safety.IsSafe(req.Content),
	}
	resp.Safe = resp.TitleSafe && resp.ContentSafe
	telemetry.RecordStoryCheck(!resp.Safe)
	if !resp.Safe {
		common.Logger().Info("api: story blocked by content screen", "title_safe", resp.TitleSafe, "content_safe", resp.ContentSafe)
	}
	writeJSON(w, http.StatusOK, resp)
}
