// Package session owns the assessment attempt aggregate: the shuffled deck,
// the sort cursor and tiers, the narrowed and ranked sets, the transcript and
// the generated definitions. Mutations enforce the aggregate's invariants;
// stage ordering lives in internal/progression.
package session

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"valuesprism/internal/catalog"
	dErrors "valuesprism/pkg/domain-errors"
)

// New creates a fresh attempt with a new session id and a new shuffle over
// the full deck.
func New() *State {
	s := &State{}
	s.init()
	return s
}

func (s *State) init() {
	ids := catalog.AllIDs()
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	s.SessionID = uuid.NewString()
	s.ShuffledIDs = ids
	s.Cursor = 0
	s.SortTiers = SortTiers{}
	s.NarrowedSet = nil
	s.RankedOrder = nil
	s.Transcript = ""
	s.Definitions = make(map[string]Definition)
	s.ShareSlug = ""
	s.Consent = false
}

// Reset reinitializes every field: new session id, new shuffle, empty tiers,
// definitions and slug. It is the only way out of a completed attempt.
func (s *State) Reset() {
	s.init()
}

// AdvanceSort assigns the card under the cursor to a tier and advances the
// cursor. Sorting past the end of the deck is rejected.
func (s *State) AdvanceSort(tier Tier) error {
	if !tier.Valid() {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown tier %q", tier))
	}
	if s.Cursor >= len(s.ShuffledIDs) {
		return dErrors.New(dErrors.CodeInvalidInput, "sorting already complete")
	}

	id := s.ShuffledIDs[s.Cursor]
	switch tier {
	case TierVery:
		s.SortTiers.Very = append(s.SortTiers.Very, id)
	case TierSomewhat:
		s.SortTiers.Somewhat = append(s.SortTiers.Somewhat, id)
	case TierLess:
		s.SortTiers.Less = append(s.SortTiers.Less, id)
	}
	s.Cursor++
	return nil
}

// SortComplete reports whether every card has been sorted.
func (s *State) SortComplete() bool {
	return len(s.ShuffledIDs) > 0 && s.Cursor >= len(s.ShuffledIDs)
}

// SetNarrowed replaces the narrowed set. The ids must number 3–5 and every id
// must come from the "very important" tier.
func (s *State) SetNarrowed(ids []string) error {
	if len(ids) < NarrowedMin || len(ids) > NarrowedMax {
		return dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("narrowed set must hold %d-%d values, got %d", NarrowedMin, NarrowedMax, len(ids)))
	}

	very := make(map[string]struct{}, len(s.SortTiers.Very))
	for _, id := range s.SortTiers.Very {
		very[id] = struct{}{}
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := very[id]; !ok {
			return dErrors.New(dErrors.CodeInvalidInput,
				fmt.Sprintf("value %q is not in the very-important tier", id))
		}
		if _, dup := seen[id]; dup {
			return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("value %q listed twice", id))
		}
		seen[id] = struct{}{}
	}

	s.NarrowedSet = append([]string(nil), ids...)
	// A narrowed change invalidates any previous ranking over a different set.
	if !isPermutation(s.RankedOrder, s.NarrowedSet) {
		s.RankedOrder = nil
	}
	return nil
}

// SetRankedOrder replaces the ranked order. The order must be a permutation
// of the current narrowed set; anything else is rejected.
func (s *State) SetRankedOrder(order []string) error {
	if !isPermutation(order, s.NarrowedSet) {
		return dErrors.New(dErrors.CodeInvalidInput, "ranked order must be a permutation of the narrowed set")
	}
	s.RankedOrder = append([]string(nil), order...)
	return nil
}

// TopRanked returns the first n ranked ids (fewer if the ranking is shorter).
func (s *State) TopRanked(n int) []string {
	if len(s.RankedOrder) < n {
		n = len(s.RankedOrder)
	}
	return append([]string(nil), s.RankedOrder[:n]...)
}

// SetTranscript stores the user's spoken/typed explanation. Empty is allowed.
func (s *State) SetTranscript(text string) {
	s.Transcript = text
}

// SetDefinitions merges a generated definition map. Only ids in the top 3 of
// the ranked order are accepted; anything else violates the aggregate
// invariant and is dropped.
func (s *State) SetDefinitions(defs map[string]Definition) {
	if s.Definitions == nil {
		s.Definitions = make(map[string]Definition, len(defs))
	}
	top := make(map[string]struct{}, DefinedTop)
	for _, id := range s.TopRanked(DefinedTop) {
		top[id] = struct{}{}
	}
	for id, def := range defs {
		if _, ok := top[id]; ok {
			s.Definitions[id] = def
		}
	}
}

// UpdateDefinition merges a user edit into one definition and marks it
// UserEdited. Empty definition/anchors keep the existing content.
func (s *State) UpdateDefinition(id, tagline, definition string, anchors []string) error {
	def, ok := s.Definitions[id]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("no definition for value %q", id))
	}
	def.Tagline = tagline
	if definition != "" {
		def.Definition = definition
	}
	if len(anchors) > 0 {
		def.BehavioralAnchors = append([]string(nil), anchors...)
	}
	def.UserEdited = true
	s.Definitions[id] = def
	return nil
}

// SetShareSlug records the published share identifier. A slug is assigned
// once; only Reset clears it.
func (s *State) SetShareSlug(slug string) error {
	if s.ShareSlug != "" && s.ShareSlug != slug {
		return dErrors.New(dErrors.CodeConflict, "share slug already assigned")
	}
	s.ShareSlug = slug
	return nil
}

// SetConsent records the consent flag. Independent of stage progression.
func (s *State) SetConsent(consent bool) {
	s.Consent = consent
}

func isPermutation(order, set []string) bool {
	if len(order) != len(set) {
		return false
	}
	want := make(map[string]int, len(set))
	for _, id := range set {
		want[id]++
	}
	for _, id := range order {
		if want[id] == 0 {
			return false
		}
		want[id]--
	}
	return true
}
