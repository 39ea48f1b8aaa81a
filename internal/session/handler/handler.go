// Package handler exposes the session lifecycle and funnel mutations over
// HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"valuesprism/internal/insights"
	"valuesprism/internal/progression"
	"valuesprism/internal/session"
	dErrors "valuesprism/pkg/domain-errors"
	"valuesprism/pkg/platform/httputil"
)

// Service defines the session operations the handler fronts.
type Service interface {
	Create(ctx context.Context) (*session.State, error)
	Get(ctx context.Context, sessionID string) (*session.State, error)
	AdvanceSort(ctx context.Context, sessionID string, tier session.Tier) (*session.State, error)
	Narrow(ctx context.Context, sessionID string, ids []string) (*session.State, error)
	Rank(ctx context.Context, sessionID string, order []string) (*session.State, error)
	SetTranscript(ctx context.Context, sessionID, text string) (*session.State, error)
	SaveDefinitions(ctx context.Context, sessionID string, defs map[string]session.Definition) (*session.State, error)
	UpdateDefinition(ctx context.Context, sessionID, valueID, tagline, definition string, anchors []string) (*session.State, error)
	SetConsent(ctx context.Context, sessionID string, consent bool) (*session.State, error)
	Reset(ctx context.Context, sessionID string) (*session.State, error)
	Stage(ctx context.Context, sessionID string, requested progression.Stage) (progression.Decision, error)
	ResumeStage(ctx context.Context, sessionID string) (progression.Stage, error)
}

// Handler handles session endpoints.
type Handler struct {
	logger  *slog.Logger
	session Service
}

// New creates a new session Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		session: service,
	}
}

// Register registers the session routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Get("/insights", h.handleInsights)
			r.Get("/stage/{stage}", h.handleStage)
			r.Get("/resume", h.handleResume)
			r.Post("/sort", h.handleSort)
			r.Post("/narrow", h.handleNarrow)
			r.Post("/rank", h.handleRank)
			r.Post("/transcript", h.handleTranscript)
			r.Post("/definitions", h.handleSaveDefinitions)
			r.Patch("/definitions/{valueID}", h.handleUpdateDefinition)
			r.Post("/consent", h.handleConsent)
			r.Post("/reset", h.handleReset)
		})
	})
}

func (h *Handler) writeState(w http.ResponseWriter, status int, state *session.State) {
	httputil.WriteJSON(w, status, state)
}

func (h *Handler) writeFailure(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "session operation failed", "op", op, "error", err.Error())
	}
	httputil.WriteError(w, err)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	state, err := h.session.Create(r.Context())
	if err != nil {
		h.writeFailure(r.Context(), w, "create", err)
		return
	}
	h.writeState(w, http.StatusCreated, state)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	state, err := h.session.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeFailure(r.Context(), w, "get", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}

// handleInsights reports the domain distribution of the very-important tier.
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	state, err := h.session.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeFailure(r.Context(), w, "insights", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"sessionId":    state.SessionID,
		"distribution": insights.Distribution(state.SortTiers.Very),
	})
}

func (h *Handler) handleStage(w http.ResponseWriter, r *http.Request) {
	stage, err := progression.ParseStage(chi.URLParam(r, "stage"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInvalidInput, err.Error()))
		return
	}
	decision, err := h.session.Stage(r.Context(), chi.URLParam(r, "sessionID"), stage)
	if err != nil {
		h.writeFailure(r.Context(), w, "stage", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, decision)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	stage, err := h.session.ResumeStage(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeFailure(r.Context(), w, "resume", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"stage": string(stage)})
}

func (h *Handler) handleSort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tier session.Tier `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	state, err := h.session.AdvanceSort(r.Context(), chi.URLParam(r, "sessionID"), req.Tier)
	if err != nil {
		h.writeFailure(r.Context(), w, "sort", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}

func (h *Handler) handleNarrow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ValueIDs []string `json:"valueIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	state, err := h.session.Narrow(r.Context(), chi.URLParam(r, "sessionID"), req.ValueIDs)
	if err != nil {
		h.writeFailure(r.Context(), w, "narrow", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}

func (h *Handler) handleRank(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order []string `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	state, err := h.session.Rank(r.Context(), chi.URLParam(r, "sessionID"), req.Order)
	if err != nil {
		h.writeFailure(r.Context(), w, "rank", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	state, err := h.session.SetTranscript(r.Context(), chi.URLParam(r, "sessionID"), req.Transcript)
	if err != nil {
		h.writeFailure(r.Context(), w, "transcript", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}

func (h *Handler) handleSaveDefinitions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Definitions map[string]session.Definition `json:"definitions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if len(req.Definitions) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "no definitions provided"))
		return
	}
	state, err := h.session.SaveDefinitions(r.Context(), chi.URLParam(r, "sessionID"), req.Definitions)
	if err != nil {
		h.writeFailure(r.Context(), w, "definitions", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}

func (h *Handler) handleUpdateDefinition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tagline           string   `json:"tagline"`
		Definition        string   `json:"definition"`
		BehavioralAnchors []string `json:"behavioralAnchors"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	state, err := h.session.UpdateDefinition(r.Context(),
		chi.URLParam(r, "sessionID"), chi.URLParam(r, "valueID"),
		req.Tagline, req.Definition, req.BehavioralAnchors)
	if err != nil {
		h.writeFailure(r.Context(), w, "update_definition", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}

func (h *Handler) handleConsent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Consent bool `json:"consent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	state, err := h.session.SetConsent(r.Context(), chi.URLParam(r, "sessionID"), req.Consent)
	if err != nil {
		h.writeFailure(r.Context(), w, "consent", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}

// handleReset starts the attempt over. The response carries the new session
// id; the old one no longer resolves.
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	state, err := h.session.Reset(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeFailure(r.Context(), w, "reset", err)
		return
	}
	h.writeState(w, http.StatusOK, state)
}
