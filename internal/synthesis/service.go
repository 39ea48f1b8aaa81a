// Package synthesis turns a finished ranking into personalized value
// definitions. The model path and the offline fallback produce the same
// shape, so callers never branch on which one served them.
package synthesis

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"valuesprism/internal/catalog"
	"valuesprism/internal/insights"
	"valuesprism/internal/ratelimit/models"
	"valuesprism/internal/session"
	"valuesprism/internal/synthesis/metrics"
	dErrors "valuesprism/pkg/domain-errors"
	"valuesprism/pkg/platform/audit"
	"valuesprism/pkg/platform/audit/publisher"
)

const toolName = "generate_value_definition"

// definitionTool is the schema the model fills once per value.
var definitionTool = Tool{
	Name:        toolName,
	Description: "Create a personalized value definition with tagline and behavioral anchors",
	InputSchema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value_id": map[string]any{
				"type":        "string",
				"description": "The ID of the value being defined",
			},
			"tagline": map[string]any{
				"type":        "string",
				"description": "3-6 memorable words that capture the essence of this value for this person",
			},
			"definition": map[string]any{
				"type":        "string",
				"description": "3-4 sentences explaining what this value means. Include three critical elements: (1) what this value looks like in daily life, (2) how it guides decision-making, (3) how it shapes relationships with others.",
			},
			"behavioral_anchors": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    5,
				"description": `3-5 practical decision-making questions. Format: "When [situation], ask: [question]?"`,
			},
		},
		"required": []string{"value_id", "tagline", "definition", "behavioral_anchors"},
	},
}

// Request carries everything the model needs for one synthesis pass.
type Request struct {
	SessionID    string
	RankedValues []string
	Transcript   string
	SortTiers    insights.Tiers
}

// Result is the synthesis outcome. Fallback is true when any definition came
// from the offline generator; FallbackReason carries the model failure detail
// when the whole batch degraded.
type Result struct {
	Definitions    map[string]session.Definition
	Fallback       bool
	FallbackReason string
	RateLimit      RateLimitHeaders
}

// RateLimitHeaders mirrors the admission state at the time of the check so
// the transport layer can surface it without a second store round trip.
type RateLimitHeaders struct {
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int
}

// Limiter is the admission check the service consults before any model call.
type Limiter interface {
	Check(ctx context.Context, key string) *models.RateLimitResult
}

// Service orchestrates prompt assembly, the model call and degradation.
type Service struct {
	client  ModelClient
	limiter Limiter
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   *publisher.Publisher
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAudit(pub *publisher.Publisher) Option {
	return func(s *Service) { s.audit = pub }
}

// New creates the service. A nil client is allowed and forces the fallback
// path, which is how the server runs without an API credential.
func New(client ModelClient, limiter Limiter, opts ...Option) *Service {
	svc := &Service{
		client:  client,
		limiter: limiter,
		logger:  slog.Default(),
		tracer:  otel.Tracer("valuesprism/synthesis"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Synthesize produces a definition for each of the caller's top 3 ranked
// values. Admission control runs first, then input validation; those two are
// the only error returns. After them it degrades in order: a missing client
// serves the full fallback batch; a model failure serves the full fallback
// batch with the reason attached; a partial model result is topped up per id.
func (s *Service) Synthesize(ctx context.Context, callerKey string, req Request) (*Result, error) {
	result := &Result{}
	if s.limiter != nil {
		admission := s.limiter.Check(ctx, callerKey)
		result.RateLimit = RateLimitHeaders{
			Limit:      admission.Limit,
			Remaining:  admission.Remaining,
			ResetAt:    admission.ResetAt,
			RetryAfter: admission.RetryAfter,
		}
		if !admission.Allowed {
			s.emit(ctx, req.SessionID, callerKey, audit.EventRateLimitExceeded, "")
			return result, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded. Please try again later.")
		}
	}

	// Admission is decided before the payload is inspected, so a rejected
	// request still consumes budget.
	if len(req.RankedValues) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "no ranked values provided")
	}

	top3 := req.RankedValues
	if len(top3) > 3 {
		top3 = top3[:3]
	}

	if s.client == nil {
		s.logger.Warn("no model client configured, serving fallback definitions")
		s.serveFallback(result, top3, "")
		if s.metrics != nil {
			s.metrics.IncrementRequests("fallback")
		}
		s.emit(ctx, req.SessionID, callerKey, audit.EventFallbackUsed, "no model client")
		return result, nil
	}

	defs, err := s.callModel(ctx, req, top3)
	if err != nil {
		s.logger.Error("model call failed, serving fallback definitions", "error", err)
		s.serveFallback(result, top3, err.Error())
		if s.metrics != nil {
			s.metrics.IncrementRequests("fallback")
		}
		s.emit(ctx, req.SessionID, callerKey, audit.EventFallbackUsed, err.Error())
		return result, nil
	}

	// Top up any value the model skipped.
	missing := 0
	for _, id := range top3 {
		if _, ok := defs[id]; ok {
			continue
		}
		item, ok := catalog.ValueByID(id)
		if !ok {
			continue
		}
		defs[id] = FallbackDefinition(item)
		missing++
	}
	if missing > 0 {
		result.Fallback = true
		s.logger.Warn("model returned partial result", "missing", missing)
		if s.metrics != nil {
			s.metrics.AddFallbacks(missing)
		}
	}

	result.Definitions = defs
	if s.metrics != nil {
		s.metrics.IncrementRequests("ok")
	}
	s.emit(ctx, req.SessionID, callerKey, audit.EventDefinitionsGenerated, "")
	return result, nil
}

func (s *Service) emit(ctx context.Context, sessionID, callerKey string, action audit.AuditEvent, detail string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Emit(ctx, audit.Event{
		SessionID: sessionID,
		ClientIP:  callerKey,
		Action:    string(action),
		Detail:    detail,
	})
}

func (s *Service) serveFallback(result *Result, top3 []string, reason string) {
	result.Definitions = FallbackDefinitions(top3)
	result.Fallback = true
	result.FallbackReason = reason
	if s.metrics != nil {
		s.metrics.AddFallbacks(len(result.Definitions))
	}
}

// callModel runs one tool-enabled completion and collects the tool calls into
// a definition map. A duplicate value_id keeps the last call. Tool calls that
// name an unknown id, or omit required fields, are dropped individually.
func (s *Service) callModel(ctx context.Context, req Request, top3 []string) (map[string]session.Definition, error) {
	ctx, span := s.tracer.Start(ctx, "synthesis.model_call",
		trace.WithAttributes(attribute.Int("values.count", len(top3))))
	defer span.End()

	start := time.Now()
	resp, err := s.client.CompleteWithTools(ctx,
		SystemPrompt(),
		BuildUserPrompt(req.RankedValues, req.Transcript, req.SortTiers),
		[]Tool{definitionTool},
	)
	if s.metrics != nil {
		s.metrics.ObserveDuration(time.Since(start))
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	allowed := make(map[string]bool, len(top3))
	for _, id := range top3 {
		allowed[id] = true
	}

	defs := make(map[string]session.Definition)
	for _, call := range resp.ToolCalls {
		if call.Name != toolName || call.Input == nil {
			continue
		}
		def, id, ok := parseToolInput(call.Input)
		if !ok || !allowed[id] {
			continue
		}
		defs[id] = def
	}
	span.SetAttributes(attribute.Int("definitions.count", len(defs)))
	return defs, nil
}

// parseToolInput validates one tool invocation payload. Tagline and value_id
// are required; a missing definition or anchor list makes the block unusable
// and it is discarded.
func parseToolInput(input map[string]any) (session.Definition, string, bool) {
	id, _ := input["value_id"].(string)
	tagline, _ := input["tagline"].(string)
	definition, _ := input["definition"].(string)
	if id == "" || tagline == "" || definition == "" {
		return session.Definition{}, "", false
	}

	rawAnchors, _ := input["behavioral_anchors"].([]any)
	anchors := make([]string, 0, len(rawAnchors))
	for _, a := range rawAnchors {
		if s, ok := a.(string); ok && s != "" {
			anchors = append(anchors, s)
		}
	}
	if len(anchors) == 0 {
		return session.Definition{}, "", false
	}

	return session.Definition{
		Tagline:           tagline,
		Definition:        definition,
		BehavioralAnchors: anchors,
		UserEdited:        false,
	}, id, true
}
