// Package progression is the stage state machine for an assessment attempt.
// Stages run Sort, Narrow, Rank, Define, Review, Share in order; each declares a
// prerequisite over the session aggregate, and every navigation is checked
// against the table here rather than ad hoc per page.
package progression

import (
	"fmt"

	"valuesprism/internal/session"
)

// Stage identifies one step of the funnel.
type Stage string

const (
	// StageEntry is the landing step outside the machine proper: the place a
	// caller with no session at all is redirected to.
	StageEntry Stage = "entry"

	StageSort   Stage = "sort"
	StageNarrow Stage = "narrow"
	StageRank   Stage = "rank"
	StageDefine Stage = "define"
	StageReview Stage = "review"
	StageShare  Stage = "share"
)

// order lists the machine's stages in required order. StageEntry is not part
// of the machine.
var order = []Stage{StageSort, StageNarrow, StageRank, StageDefine, StageReview, StageShare}

// prerequisites maps each stage to its entry predicate over the aggregate.
// A stage may be occupied only while its predicate holds.
var prerequisites = map[Stage]func(*session.State) bool{
	StageSort:   func(s *session.State) bool { return len(s.ShuffledIDs) > 0 },
	StageNarrow: func(s *session.State) bool { return len(s.SortTiers.Very) > 0 },
	StageRank:   func(s *session.State) bool { return len(s.NarrowedSet) > 0 },
	StageDefine: func(s *session.State) bool { return len(s.RankedOrder) > 0 },
	StageReview: func(s *session.State) bool { return len(s.RankedOrder) > 0 },
	StageShare:  func(s *session.State) bool { return len(s.RankedOrder) > 0 },
}

// ParseStage validates a stage name from the transport layer.
func ParseStage(raw string) (Stage, error) {
	st := Stage(raw)
	for _, s := range order {
		if s == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", raw)
}

// Decision is the outcome of a stage-entry check.
type Decision struct {
	// Proceed is true when the caller may stay on the requested stage.
	Proceed bool `json:"proceed"`
	// Redirect names the stage to go to instead when Proceed is false.
	Redirect Stage `json:"redirect,omitempty"`
}

func proceed() Decision         { return Decision{Proceed: true} }
func redirect(s Stage) Decision { return Decision{Redirect: s} }

// Check decides whether the caller may occupy the requested stage right now.
// A nil state redirects to the funnel entry. A failing prerequisite redirects
// to the nearest earlier stage whose prerequisite holds; the machine never
// skips a caller forward past an unmet stage. The one completion-triggered
// transition: a finished sort advances Sort to Narrow without a user action.
func Check(state *session.State, requested Stage) Decision {
	if state == nil || state.SessionID == "" {
		return redirect(StageEntry)
	}

	if requested == StageSort && state.SortComplete() {
		return redirect(StageNarrow)
	}

	idx := indexOf(requested)
	if idx < 0 {
		return redirect(StageEntry)
	}

	if prerequisites[requested](state) {
		return proceed()
	}

	// Walk backward to the nearest satisfied stage.
	for i := idx - 1; i >= 0; i-- {
		if prerequisites[order[i]](state) {
			return redirect(order[i])
		}
	}
	return redirect(StageEntry)
}

// Resume returns the furthest stage the state currently satisfies, the
// derived "where was I" view used when an interrupted attempt is reopened.
// It is computed, never persisted.
func Resume(state *session.State) Stage {
	if state == nil || state.SessionID == "" {
		return StageEntry
	}
	furthest := StageEntry
	for _, s := range order {
		if !prerequisites[s](state) {
			break
		}
		furthest = s
	}
	if furthest == StageSort && state.SortComplete() {
		return StageNarrow
	}
	return furthest
}

func indexOf(s Stage) int {
	for i, st := range order {
		if st == s {
			return i
		}
	}
	return -1
}
