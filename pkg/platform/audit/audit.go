// Package audit captures key funnel actions for operational visibility.
// Events are emitted from domain logic and kept transport-agnostic so stores
// and sinks can fan out.
package audit

import "time"

// Event is one recorded action against a session.
type Event struct {
	Timestamp time.Time
	SessionID string
	Action    string
	// ClientIP is the caller bucket the action was attributed to.
	ClientIP string
	// RequestID is the correlation id from the HTTP request context.
	RequestID string
	// Detail carries free-form context, e.g. the fallback reason.
	Detail string
}

type AuditEvent string

const (
	// Session events
	EventSessionCreated AuditEvent = "session_created"
	EventSessionReset   AuditEvent = "session_reset"
	EventConsentGranted AuditEvent = "consent_granted"
	EventConsentRevoked AuditEvent = "consent_revoked"

	// Synthesis events
	EventDefinitionsGenerated AuditEvent = "definitions_generated"
	EventFallbackUsed         AuditEvent = "fallback_used"
	EventRateLimitExceeded    AuditEvent = "rate_limit_exceeded"

	// Profile events
	EventProfilePublished AuditEvent = "profile_published"
)
