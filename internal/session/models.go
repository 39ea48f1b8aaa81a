package session

// Tier is one of the three importance buckets a card can be sorted into.
type Tier string

const (
	TierVery     Tier = "very"
	TierSomewhat Tier = "somewhat"
	TierLess     Tier = "less"
)

// Valid reports whether t is one of the three defined tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierVery, TierSomewhat, TierLess:
		return true
	}
	return false
}

// SortTiers partitions the value ids processed so far. An id lives in at most
// one tier; the union size always equals the cursor.
type SortTiers struct {
	Very     []string `json:"very"`
	Somewhat []string `json:"somewhat"`
	Less     []string `json:"less"`
}

// Definition is one synthesized (or fallback, or user-edited) value
// definition.
type Definition struct {
	Tagline           string   `json:"tagline"`
	Definition        string   `json:"definition,omitempty"`
	BehavioralAnchors []string `json:"behavioralAnchors,omitempty"`
	UserEdited        bool     `json:"userEdited"`
}

// NarrowedMin and NarrowedMax bound the narrowed set size. Violations are a
// caller error, never silently clamped.
const (
	NarrowedMin = 3
	NarrowedMax = 5
)

// DefinedTop is how many of the ranked values receive definitions.
const DefinedTop = 3

// State is the mutable aggregate for one assessment attempt. It is owned by a
// single client; concurrent tabs race at the store level with last write
// wins, which the funnel tolerates because every stage write is complete.
type State struct {
	SessionID   string                `json:"sessionId"`
	ShuffledIDs []string              `json:"shuffledIds"`
	Cursor      int                   `json:"cursor"`
	SortTiers   SortTiers             `json:"sortTiers"`
	NarrowedSet []string              `json:"narrowedSet"`
	RankedOrder []string              `json:"rankedOrder"`
	Transcript  string                `json:"transcript"`
	Definitions map[string]Definition `json:"definitions"`
	ShareSlug   string                `json:"shareSlug,omitempty"`
	Consent     bool                  `json:"consent"`
}
