// Package handler exposes definition synthesis over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"valuesprism/internal/insights"
	"valuesprism/internal/ratelimit/models"
	"valuesprism/internal/session"
	"valuesprism/internal/synthesis"
	dErrors "valuesprism/pkg/domain-errors"
	"valuesprism/pkg/platform/httputil"
	"valuesprism/pkg/platform/middleware/metadata"
)

// Service defines the synthesis operation the handler fronts.
type Service interface {
	Synthesize(ctx context.Context, callerKey string, req synthesis.Request) (*synthesis.Result, error)
}

// SessionService loads and updates session state for single-value
// regeneration.
type SessionService interface {
	Get(ctx context.Context, sessionID string) (*session.State, error)
	SaveDefinitions(ctx context.Context, sessionID string, defs map[string]session.Definition) (*session.State, error)
}

// Handler handles the definition generation endpoints.
type Handler struct {
	logger    *slog.Logger
	synthesis Service
	sessions  SessionService
}

// New creates a new synthesis Handler.
func New(service Service, sessions SessionService, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		synthesis: service,
		sessions:  sessions,
	}
}

// Register registers the synthesis routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/definitions", h.handleGenerateDefinitions)
	r.Post("/api/sessions/{sessionID}/definitions/{valueID}/regenerate", h.handleRegenerate)
}

type generateRequest struct {
	SessionID    string   `json:"sessionId"`
	RankedValues []string `json:"rankedValues"`
	Transcript   string   `json:"transcript"`
	SortedValues struct {
		Very     []string `json:"very"`
		Somewhat []string `json:"somewhat"`
		Less     []string `json:"less"`
	} `json:"sortedValues"`
}

type generateResponse struct {
	Definitions map[string]session.Definition `json:"definitions"`
	Fallback    bool                          `json:"fallback,omitempty"`
	Error       string                        `json:"error,omitempty"`
}

func (h *Handler) handleGenerateDefinitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid definitions request", "error", err.Error())
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	callerKey := metadata.GetClientIP(ctx)
	if callerKey == "" || callerKey == metadata.UnknownClient {
		callerKey = metadata.ClientIPFromRequest(r)
	}

	result, err := h.synthesis.Synthesize(ctx, callerKey, synthesis.Request{
		SessionID:    req.SessionID,
		RankedValues: req.RankedValues,
		Transcript:   req.Transcript,
		SortTiers: insights.Tiers{
			Very:     req.SortedValues.Very,
			Somewhat: req.SortedValues.Somewhat,
			Less:     req.SortedValues.Less,
		},
	})
	if err != nil {
		if dErrors.Is(err, dErrors.CodeRateLimited) {
			h.writeRateLimited(w, result)
			return
		}
		if dErrors.Is(err, dErrors.CodeInvalidInput) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "definition synthesis failed",
			"session_id", req.SessionID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to generate definitions"))
		return
	}

	h.setRateLimitHeaders(w, result)
	httputil.WriteJSON(w, http.StatusOK, generateResponse{
		Definitions: result.Definitions,
		Fallback:    result.Fallback,
		Error:       result.FallbackReason,
	})
}

// handleRegenerate rebuilds the definition for a single ranked value. The
// session owns the transcript, which is forwarded only when the regenerated
// value is the #1-ranked one; voice preservation is specific to the top value.
func (h *Handler) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")
	valueID := chi.URLParam(r, "valueID")

	state, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	inTop := false
	for _, id := range state.TopRanked(session.DefinedTop) {
		if id == valueID {
			inTop = true
			break
		}
	}
	if !inTop {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput,
			"value is not one of the top ranked values"))
		return
	}

	transcript := ""
	if len(state.RankedOrder) > 0 && state.RankedOrder[0] == valueID {
		transcript = state.Transcript
	}

	callerKey := metadata.GetClientIP(ctx)
	if callerKey == "" || callerKey == metadata.UnknownClient {
		callerKey = metadata.ClientIPFromRequest(r)
	}

	result, err := h.synthesis.Synthesize(ctx, callerKey, synthesis.Request{
		SessionID:    sessionID,
		RankedValues: []string{valueID},
		Transcript:   transcript,
		SortTiers: insights.Tiers{
			Very:     state.SortTiers.Very,
			Somewhat: state.SortTiers.Somewhat,
			Less:     state.SortTiers.Less,
		},
	})
	if err != nil {
		if dErrors.Is(err, dErrors.CodeRateLimited) {
			h.writeRateLimited(w, result)
			return
		}
		h.logger.ErrorContext(ctx, "definition regeneration failed",
			"session_id", sessionID,
			"value_id", valueID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to regenerate definition"))
		return
	}

	if def, ok := result.Definitions[valueID]; ok {
		if _, err := h.sessions.SaveDefinitions(ctx, sessionID, map[string]session.Definition{valueID: def}); err != nil {
			httputil.WriteError(w, err)
			return
		}
	}

	h.setRateLimitHeaders(w, result)
	httputil.WriteJSON(w, http.StatusOK, generateResponse{
		Definitions: result.Definitions,
		Fallback:    result.Fallback,
		Error:       result.FallbackReason,
	})
}

func (h *Handler) setRateLimitHeaders(w http.ResponseWriter, result *synthesis.Result) {
	if result == nil || result.RateLimit.Limit == 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.RateLimit.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.RateLimit.Remaining))
	if !result.RateLimit.ResetAt.IsZero() {
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.RateLimit.ResetAt.Unix(), 10))
	}
}

func (h *Handler) writeRateLimited(w http.ResponseWriter, result *synthesis.Result) {
	retryAfter := 1
	if result != nil && result.RateLimit.RetryAfter > 0 {
		retryAfter = result.RateLimit.RetryAfter
	}
	h.setRateLimitHeaders(w, result)
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, models.RateLimitExceededResponse{
		Error:      "Rate limit exceeded. Please try again later.",
		RetryAfter: retryAfter,
	})
}
