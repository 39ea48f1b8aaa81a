package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"valuesprism/internal/session"
	"valuesprism/internal/session/service"
)

// HandlerSuite validates HTTP concerns over a real service and in-memory
// store.
type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc, err := service.New(session.NewInMemoryStore(), service.WithLogger(logger))
	require.NoError(s.T(), err)

	r := chi.NewRouter()
	New(svc, logger).Register(r)
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) createSession() session.State {
	rec := s.do(http.MethodPost, "/api/sessions/", "")
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	var state session.State
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &state))
	require.NotEmpty(s.T(), state.SessionID)
	return state
}

func (s *HandlerSuite) TestCreateAndGet() {
	state := s.createSession()
	s.Len(state.ShuffledIDs, 90)
	s.Equal(0, state.Cursor)

	rec := s.do(http.MethodGet, "/api/sessions/"+state.SessionID+"/", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerSuite) TestGetUnknownSession() {
	rec := s.do(http.MethodGet, "/api/sessions/nope/", "")
	s.Equal(http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("not_found", resp["error"])
}

func (s *HandlerSuite) TestSort() {
	state := s.createSession()
	path := fmt.Sprintf("/api/sessions/%s/sort", state.SessionID)

	rec := s.do(http.MethodPost, path, `{"tier": "very"}`)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var updated session.State
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal(1, updated.Cursor)
	s.Equal([]string{state.ShuffledIDs[0]}, updated.SortTiers.Very)

	rec = s.do(http.MethodPost, path, `{"tier": "sideways"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, path, `not json`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// sortDeck pushes the whole deck through sorting with the named ids marked
// very important.
func (s *HandlerSuite) sortDeck(state session.State, very map[string]bool) {
	path := fmt.Sprintf("/api/sessions/%s/sort", state.SessionID)
	for _, id := range state.ShuffledIDs {
		tier := "less"
		if very[id] {
			tier = "very"
		}
		rec := s.do(http.MethodPost, path, fmt.Sprintf(`{"tier": %q}`, tier))
		require.Equal(s.T(), http.StatusOK, rec.Code)
	}
}

func (s *HandlerSuite) TestFullFunnelOverHTTP() {
	state := s.createSession()
	id := state.SessionID
	s.sortDeck(state, map[string]bool{"integrity": true, "honesty": true, "courage": true})

	rec := s.do(http.MethodPost, "/api/sessions/"+id+"/narrow",
		`{"valueIds": ["integrity", "honesty", "courage"]}`)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/sessions/"+id+"/rank",
		`{"order": ["courage", "integrity", "honesty"]}`)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/sessions/"+id+"/transcript",
		`{"transcript": "courage drives everything I do"}`)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/sessions/"+id+"/definitions",
		`{"definitions": {
			"courage": {"tagline": "Forward through fear", "userEdited": false},
			"integrity": {"tagline": "Truth in action", "userEdited": false},
			"honesty": {"tagline": "Words that match", "userEdited": false}
		}}`)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	rec = s.do(http.MethodPatch, "/api/sessions/"+id+"/definitions/courage",
		`{"tagline": "My own phrasing"}`)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var updated session.State
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal("My own phrasing", updated.Definitions["courage"].Tagline)
	s.True(updated.Definitions["courage"].UserEdited)

	rec = s.do(http.MethodPost, "/api/sessions/"+id+"/consent", `{"consent": true}`)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	// Stage gate: review is now reachable.
	rec = s.do(http.MethodGet, "/api/sessions/"+id+"/stage/review", "")
	require.Equal(s.T(), http.StatusOK, rec.Code)
	var decision struct {
		Proceed  bool   `json:"proceed"`
		Redirect string `json:"redirect"`
	}
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &decision))
	s.True(decision.Proceed)
}

func (s *HandlerSuite) TestNarrowRejectsOutOfBounds() {
	state := s.createSession()
	s.sortDeck(state, map[string]bool{"integrity": true, "honesty": true})

	rec := s.do(http.MethodPost, "/api/sessions/"+state.SessionID+"/narrow",
		`{"valueIds": ["integrity", "honesty"]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestStageRedirect() {
	state := s.createSession()

	rec := s.do(http.MethodGet, "/api/sessions/"+state.SessionID+"/stage/rank", "")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var decision struct {
		Proceed  bool   `json:"proceed"`
		Redirect string `json:"redirect"`
	}
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &decision))
	s.False(decision.Proceed)
	s.Equal("sort", decision.Redirect)

	rec = s.do(http.MethodGet, "/api/sessions/"+state.SessionID+"/stage/bogus", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestResume() {
	state := s.createSession()
	rec := s.do(http.MethodGet, "/api/sessions/"+state.SessionID+"/resume", "")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("sort", resp["stage"])
}

func (s *HandlerSuite) TestInsights() {
	state := s.createSession()
	s.sortDeck(state, map[string]bool{"integrity": true, "honesty": true, "kindness": true})

	rec := s.do(http.MethodGet, "/api/sessions/"+state.SessionID+"/insights", "")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp struct {
		SessionID    string `json:"sessionId"`
		Distribution []struct {
			DomainID   string `json:"domainId"`
			Count      int    `json:"count"`
			Percentage int    `json:"percentage"`
		} `json:"distribution"`
	}
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(state.SessionID, resp.SessionID)
	require.Len(s.T(), resp.Distribution, 9)
	s.Equal("integrity-character", resp.Distribution[0].DomainID)
	s.Equal(2, resp.Distribution[0].Count)
}

func (s *HandlerSuite) TestReset() {
	state := s.createSession()
	rec := s.do(http.MethodPost, "/api/sessions/"+state.SessionID+"/reset", "")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var fresh session.State
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &fresh))
	s.NotEqual(state.SessionID, fresh.SessionID)

	rec = s.do(http.MethodGet, "/api/sessions/"+state.SessionID+"/", "")
	s.Equal(http.StatusNotFound, rec.Code)
}
