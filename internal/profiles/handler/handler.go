// Package handler exposes profile publishing and the public shared view.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"valuesprism/internal/profiles"
	"valuesprism/internal/session"
	dErrors "valuesprism/pkg/domain-errors"
	"valuesprism/pkg/platform/httputil"
)

// Service defines the profile operations the handler fronts.
type Service interface {
	Publish(ctx context.Context, state *session.State) (*profiles.Profile, error)
	Get(ctx context.Context, slug string) (*profiles.Profile, error)
}

// SessionService is the slice of the session service the handler needs to
// resolve and pin the publishing session.
type SessionService interface {
	Get(ctx context.Context, sessionID string) (*session.State, error)
	SetShareSlug(ctx context.Context, sessionID, slug string) (*session.State, error)
}

// Handler handles profile endpoints.
type Handler struct {
	logger   *slog.Logger
	profiles Service
	sessions SessionService
}

// New creates a new profile Handler.
func New(profileSvc Service, sessionSvc SessionService, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		profiles: profileSvc,
		sessions: sessionSvc,
	}
}

// Register registers the profile routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/profiles", h.handlePublish)
	r.Get("/api/profiles/{slug}", h.handleGet)
}

func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.SessionID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "sessionId is required"))
		return
	}

	state, err := h.sessions.Get(ctx, req.SessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	profile, err := h.profiles.Publish(ctx, state)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "profile publish failed",
				"session_id", req.SessionID,
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	if _, err := h.sessions.SetShareSlug(ctx, req.SessionID, profile.Slug); err != nil {
		h.logger.ErrorContext(ctx, "failed to pin share slug",
			"session_id", req.SessionID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to publish profile"))
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, profile)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}
