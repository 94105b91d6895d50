package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// validToken is the only bearer token the mock service accepts.
const validToken = "itest-token"

type mockOption struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type mockPoll struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Options  []mockOption `json:"options"`
}

// mockPollService is a small in-memory stand-in for the real poll service,
// speaking its wire contract: /register, /polls, /polls/{id}/vote,
// /polls/{id}/results.
type mockPollService struct {
	mu       sync.Mutex
	users    map[string]int
	nextUser int
	polls    []mockPoll
	votes    map[int]map[int]int // pollID -> optionID -> count
	nextVote int
}

func newMockPollService(polls []mockPoll) *mockPollService {
	return &mockPollService{
		users: make(map[string]int),
		polls: polls,
		votes: make(map[int]map[int]int),
	}
}

func (s *mockPollService) start() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /polls", s.handleListPolls)
	mux.HandleFunc("POST /polls/{id}/vote", s.handleVote)
	mux.HandleFunc("GET /polls/{id}/results", s.handleResults)
	return httptest.NewServer(mux)
}

func (s *mockPollService) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"detail":"invalid body"}`, http.StatusUnprocessableEntity)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[req.Username]; taken {
		http.Error(w, `{"detail":"Username already registered"}`, http.StatusBadRequest)
		return
	}
	s.nextUser++
	s.users[req.Username] = s.nextUser
	writeJSON(w, map[string]any{"id": s.nextUser, "username": req.Username})
}

func (s *mockPollService) handleListPolls(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	s.mu.Lock()
	defer s.mu.Unlock()
	page := []mockPoll{}
	for i := skip; i < len(s.polls) && len(page) < limit; i++ {
		page = append(page, s.polls[i])
	}
	writeJSON(w, page)
}

func (s *mockPollService) handleVote(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+validToken {
		http.Error(w, `{"detail":"Could not validate credentials"}`, http.StatusUnauthorized)
		return
	}
	pollID, _ := strconv.Atoi(r.PathValue("id"))
	var req struct {
		OptionID int `json:"option_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"detail":"invalid body"}`, http.StatusUnprocessableEntity)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	poll, ok := s.findPoll(pollID)
	if !ok {
		http.Error(w, `{"detail":"Poll not found"}`, http.StatusNotFound)
		return
	}
	if !hasOption(poll, req.OptionID) {
		http.Error(w, `{"detail":"Option not found"}`, http.StatusNotFound)
		return
	}
	if s.votes[pollID] == nil {
		s.votes[pollID] = make(map[int]int)
	}
	s.votes[pollID][req.OptionID]++
	s.nextVote++
	writeJSON(w, map[string]any{"id": s.nextVote, "user_id": 1, "option_id": req.OptionID})
}

func (s *mockPollService) handleResults(w http.ResponseWriter, r *http.Request) {
	pollID, _ := strconv.Atoi(r.PathValue("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	poll, ok := s.findPoll(pollID)
	if !ok {
		http.Error(w, `{"detail":"Poll not found"}`, http.StatusNotFound)
		return
	}
	results := make([]map[string]any, 0, len(poll.Options))
	for _, opt := range poll.Options {
		results = append(results, map[string]any{
			"text":       opt.Text,
			"vote_count": s.votes[pollID][opt.ID],
		})
	}
	writeJSON(w, map[string]any{"question": poll.Question, "results": results})
}

func (s *mockPollService) findPoll(id int) (mockPoll, bool) {
	for _, p := range s.polls {
		if p.ID == id {
			return p, true
		}
	}
	return mockPoll{}, false
}

func hasOption(p mockPoll, optionID int) bool {
	for _, o := range p.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
