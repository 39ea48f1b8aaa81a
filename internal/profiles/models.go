package profiles

import (
	"time"

	"valuesprism/internal/session"
)

// ProfileValue is one ranked value inside a published snapshot, denormalized
// so the shared page renders without catalog access.
type ProfileValue struct {
	ValueID    string             `json:"valueId"`
	Name       string             `json:"name"`
	DomainName string             `json:"domainName"`
	Rank       int                `json:"rank"`
	Definition session.Definition `json:"definition"`
}

// Profile is an immutable published snapshot of a completed attempt,
// addressable by slug. Later session edits do not flow into it.
type Profile struct {
	Slug         string         `json:"slug"`
	SessionID    string         `json:"sessionId"`
	RankedValues []ProfileValue `json:"rankedValues"`
	CreatedAt    time.Time      `json:"createdAt"`
}
