package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/promptfoundry/promptfoundry/internal/catalog"
	"github.com/promptfoundry/promptfoundry/internal/engine"
	"github.com/promptfoundry/promptfoundry/internal/model"
)

// ---------------------------------------------------------------------------
// POST /api/intake
// ---------------------------------------------------------------------------

func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	draft, err := s.pipeline.DraftJSON(body)
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate variants")
		return
	}

	for _, v := range draft.Variants {
		s.metrics.observeScore("variant", v.Scoring.Total)
	}
	writeJSON(w, http.StatusOK, draft)
}

// ---------------------------------------------------------------------------
// POST /api/critique
// ---------------------------------------------------------------------------

type promptRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleCritique(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if !decodeBody(w, r, &req) {
		return
	}
	critique, err := s.pipeline.CritiquePrompt(req.Prompt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "prompt is required for critique")
		return
	}
	s.metrics.observeRisk(critique.HallucinationRisk)
	writeJSON(w, http.StatusOK, map[string]any{"critique": critique})
}

// ---------------------------------------------------------------------------
// POST /api/rewrite
// ---------------------------------------------------------------------------

type rewriteRequest struct {
	Variant *engine.RewriteRequest `json:"variant"`
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Variant == nil || req.Variant.Content == "" {
		writeError(w, http.StatusBadRequest, "variant is required for rewrite")
		return
	}

	res, err := s.pipeline.Rewrite(*req.Variant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.observeRisk(res.Critique.HallucinationRisk)
	writeJSON(w, http.StatusOK, res)
}

// ---------------------------------------------------------------------------
// POST /api/score
// ---------------------------------------------------------------------------

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if !decodeBody(w, r, &req) {
		return
	}
	scoring, err := s.pipeline.ScorePrompt(req.Prompt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "prompt is required for scoring")
		return
	}
	s.metrics.observeScore("prompt", scoring.Total)
	writeJSON(w, http.StatusOK, map[string]any{"scoring": scoring})
}

// ---------------------------------------------------------------------------
// POST /api/review
// ---------------------------------------------------------------------------

type reviewRequest struct {
	Prompts []string `json:"prompts"`
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Prompts) == 0 {
		writeError(w, http.StatusBadRequest, "prompts are required for review")
		return
	}
	if len(req.Prompts) > maxReviewBatch {
		writeError(w, http.StatusBadRequest, "too many prompts in one review")
		return
	}

	reviews, err := s.reviewer.Review(r.Context(), req.Prompts)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "review cancelled")
		return
	}
	for _, rev := range reviews {
		s.metrics.observeScore("review", rev.Scoring.Total)
		s.metrics.observeRisk(rev.Critique.HallucinationRisk)
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

// ---------------------------------------------------------------------------
// GET /api/templates, POST /api/templates
// ---------------------------------------------------------------------------

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"templates": s.catalog.Templates()})
}

type createTemplateRequest struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tpl, err := s.pipeline.NewTemplate(req.Name, req.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "name and body are required")
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// ---------------------------------------------------------------------------
// GET /api/use-cases
// ---------------------------------------------------------------------------

func (s *Server) handleListUseCases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"useCases": s.catalog.UseCases()})
}

// ---------------------------------------------------------------------------
// GET /api/library, GET /api/library/{id}
// ---------------------------------------------------------------------------

func (s *Server) handleListLibrary(w http.ResponseWriter, r *http.Request) {
	filter := model.SampleFilter{
		Variant: r.URL.Query().Get("variant"),
		Tag:     r.URL.Query().Get("tag"),
	}
	if filter.Variant != "" && !model.IsVariantType(filter.Variant) {
		writeError(w, http.StatusBadRequest, "variant must be safe, balanced or aggressive")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"prompts": s.catalog.Samples(filter)})
}

func (s *Server) handleGetLibraryPrompt(w http.ResponseWriter, r *http.Request) {
	prompt, err := s.catalog.Sample(r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "prompt not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get prompt")
		return
	}
	writeJSON(w, http.StatusOK, prompt)
}

// ---------------------------------------------------------------------------
// POST /api/export, POST /api/run
// ---------------------------------------------------------------------------

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req engine.ExportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PromptID == "" || req.Target == "" {
		writeError(w, http.StatusBadRequest, engine.ErrMissingExport.Error())
		return
	}
	res, err := s.exporter.Export(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, "export failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req engine.RunRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PromptID == "" || req.Model == "" {
		writeError(w, http.StatusBadRequest, engine.ErrMissingRun.Error())
		return
	}
	res, err := s.runner.Run(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, "run failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---------------------------------------------------------------------------
// GET /healthz
// ---------------------------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeBody decodes the JSON body into v, writing a 4xx response and
// returning false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBodyError(w, err)
		return false
	}
	return true
}

func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid JSON body")
}
