package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/prompt-enhancer/internal/llm"
	"github.com/jonathan/prompt-enhancer/internal/logger"
	"github.com/jonathan/prompt-enhancer/internal/schemas"
	"github.com/jonathan/prompt-enhancer/internal/types"
	bundled "github.com/jonathan/prompt-enhancer/schemas"
)

// maxBodyBytes bounds request bodies; ideas are short free text.
const maxBodyBytes = 1 << 20

// handleEnhance generates an enhanced prompt for an idea and its selections
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !json.Valid(body) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := schemas.ValidateBundled(bundled.EnhancementRequest, body); err != nil {
		s.errResponse(w, err)
		return
	}

	var req types.EnhancementRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Prepare(); err != nil {
		s.errResponse(w, &ErrValidation{Field: "request", Message: err.Error()})
		return
	}

	ctx := logger.ContextWithOperation(r.Context(), "enhance")
	prompt, err := s.enhancer.Enhance(ctx, &req)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.EnhancementResult{
		RequestID:      logger.RequestID(ctx),
		EnhancedPrompt: prompt,
	})
}

// handleSuggestTask asks the model which task type fits an idea
func (s *Server) handleSuggestTask(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestTaskRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ctx := logger.ContextWithOperation(r.Context(), "suggest-task")
	suggestion, err := s.suggester.Suggest(ctx, req.Idea, nil)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	resp := types.SuggestTaskResponse{}
	if suggestion != nil {
		resp.Suggested = true
		resp.Task = suggestion.Task.String()
		resp.Label = suggestion.Task.Label()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCatalog returns every option set
func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.NewCatalogResponse())
}

// handleStatus reports whether AI features are available
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	resp := types.StatusResponse{
		APIKeyConfigured: s.client != nil,
		Model:            s.model,
	}
	if !resp.APIKeyConfigured {
		resp.Message = llm.MissingAPIKeyMessage
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
