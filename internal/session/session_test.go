package session

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"valuesprism/internal/catalog"
	dErrors "valuesprism/pkg/domain-errors"
)

type StateSuite struct {
	suite.Suite
	state *State
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateSuite))
}

func (s *StateSuite) SetupTest() {
	s.state = New()
}

func (s *StateSuite) TestNew() {
	s.NotEmpty(s.state.SessionID)
	s.Len(s.state.ShuffledIDs, catalog.ValueCount)
	s.Zero(s.state.Cursor)
	s.Empty(s.state.Definitions)

	// Shuffle is a permutation of the deck.
	seen := make(map[string]bool, catalog.ValueCount)
	for _, id := range s.state.ShuffledIDs {
		_, ok := catalog.ValueByID(id)
		s.True(ok, "shuffled id %q must be in the catalog", id)
		s.False(seen[id], "shuffled id %q duplicated", id)
		seen[id] = true
	}
}

func (s *StateSuite) TestAdvanceSort() {
	s.Run("tiers stay disjoint and sized to cursor", func() {
		tiers := []Tier{TierVery, TierSomewhat, TierLess}
		for i := range 30 {
			s.Require().NoError(s.state.AdvanceSort(tiers[i%3]))
		}

		s.Equal(30, s.state.Cursor)
		union := make(map[string]int)
		for _, id := range s.state.SortTiers.Very {
			union[id]++
		}
		for _, id := range s.state.SortTiers.Somewhat {
			union[id]++
		}
		for _, id := range s.state.SortTiers.Less {
			union[id]++
		}
		s.Len(union, 30)
		for id, n := range union {
			s.Equal(1, n, "id %q appears in more than one tier", id)
		}
	})

	s.Run("rejects unknown tier", func() {
		err := s.state.AdvanceSort(Tier("critical"))
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})

	s.Run("no-op once the deck is exhausted", func() {
		for !s.state.SortComplete() {
			s.Require().NoError(s.state.AdvanceSort(TierVery))
		}
		s.Equal(catalog.ValueCount, s.state.Cursor)

		err := s.state.AdvanceSort(TierVery)
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
		s.Equal(catalog.ValueCount, s.state.Cursor)
	})
}

func (s *StateSuite) sortFirst(n int, tier Tier) {
	for range n {
		s.Require().NoError(s.state.AdvanceSort(tier))
	}
}

func (s *StateSuite) TestSetNarrowed() {
	s.sortFirst(10, TierVery)
	very := s.state.SortTiers.Very

	s.Run("accepts 3 to 5 ids from the very tier", func() {
		s.Require().NoError(s.state.SetNarrowed(very[:4]))
		s.Equal(very[:4], s.state.NarrowedSet)
	})

	s.Run("rejects too few and too many", func() {
		s.True(dErrors.Is(s.state.SetNarrowed(very[:2]), dErrors.CodeInvalidInput))
		s.True(dErrors.Is(s.state.SetNarrowed(very[:6]), dErrors.CodeInvalidInput))
	})

	s.Run("rejects ids outside the very tier", func() {
		ids := append(append([]string(nil), very[:3]...), "definitely-not-sorted")
		s.True(dErrors.Is(s.state.SetNarrowed(ids), dErrors.CodeInvalidInput))
	})

	s.Run("rejects duplicates", func() {
		ids := []string{very[0], very[1], very[1]}
		s.True(dErrors.Is(s.state.SetNarrowed(ids), dErrors.CodeInvalidInput))
	})

	s.Run("invalidates a ranking over a different set", func() {
		s.Require().NoError(s.state.SetNarrowed(very[:3]))
		s.Require().NoError(s.state.SetRankedOrder([]string{very[2], very[0], very[1]}))
		s.Require().NoError(s.state.SetNarrowed(very[1:5]))
		s.Empty(s.state.RankedOrder)
	})
}

func (s *StateSuite) TestSetRankedOrder() {
	s.sortFirst(10, TierVery)
	very := s.state.SortTiers.Very
	s.Require().NoError(s.state.SetNarrowed(very[:3]))

	s.Run("accepts a permutation", func() {
		order := []string{very[2], very[0], very[1]}
		s.Require().NoError(s.state.SetRankedOrder(order))
		s.Equal(order, s.state.RankedOrder)
	})

	s.Run("rejects foreign id", func() {
		err := s.state.SetRankedOrder([]string{very[0], very[1], very[7]})
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects omission", func() {
		err := s.state.SetRankedOrder([]string{very[0], very[1]})
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects duplicate", func() {
		err := s.state.SetRankedOrder([]string{very[0], very[1], very[1]})
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})
}

func (s *StateSuite) TestDefinitions() {
	s.sortFirst(10, TierVery)
	very := s.state.SortTiers.Very
	s.Require().NoError(s.state.SetNarrowed(very[:4]))
	s.Require().NoError(s.state.SetRankedOrder(very[:4]))

	s.Run("set keeps only top 3 ids", func() {
		defs := map[string]Definition{
			very[0]: {Tagline: "a"},
			very[1]: {Tagline: "b"},
			very[2]: {Tagline: "c"},
			very[3]: {Tagline: "rank four, dropped"},
			"alien": {Tagline: "dropped"},
		}
		s.state.SetDefinitions(defs)
		s.Len(s.state.Definitions, 3)
		s.NotContains(s.state.Definitions, very[3])
	})

	s.Run("update merges and marks user edited", func() {
		s.Require().NoError(s.state.UpdateDefinition(very[0], "mine now", "", nil))
		def := s.state.Definitions[very[0]]
		s.Equal("mine now", def.Tagline)
		s.True(def.UserEdited)
	})

	s.Run("update of unknown id fails", func() {
		err := s.state.UpdateDefinition("alien", "x", "", nil)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func (s *StateSuite) TestShareSlugAndReset() {
	s.Require().NoError(s.state.SetShareSlug("slug-1"))
	s.Require().NoError(s.state.SetShareSlug("slug-1")) // idempotent
	s.True(dErrors.Is(s.state.SetShareSlug("slug-2"), dErrors.CodeConflict))

	oldID := s.state.SessionID
	s.state.SetConsent(true)
	s.state.Reset()

	s.NotEqual(oldID, s.state.SessionID)
	s.Empty(s.state.ShareSlug)
	s.False(s.state.Consent)
	s.Zero(s.state.Cursor)
	s.Empty(s.state.Definitions)
}
