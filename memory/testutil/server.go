package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Store is an in-process stand-in for the remote memory endpoint.
// It speaks the same GET/POST protocol and counts requests.
type Store struct {
	*httptest.Server

	mu       sync.Mutex
	data     map[string]string
	gets     int
	posts    int
	getBody  string // overrides the GET response when non-empty
	postCode int    // overrides the POST status when non-zero
}

// NewStore starts a store seeded with data. Close it when done.
func NewStore(data map[string]string) *Store {
	s := &Store{data: make(map[string]string, len(data))}
	for k, v := range data {
		s.data[k] = v
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *Store) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		s.gets++
		w.Header().Set("Content-Type", "application/json")
		if s.getBody != "" {
			_, _ = w.Write([]byte(s.getBody))
			return
		}
		_ = json.NewEncoder(w).Encode(s.data)

	case http.MethodPost:
		s.posts++
		if s.postCode != 0 {
			w.WriteHeader(s.postCode)
			return
		}
		var entry map[string]string
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for k, v := range entry {
			s.data[k] = v
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// SetGetBody makes every GET answer body verbatim.
func (s *Store) SetGetBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getBody = body
}

// SetPostStatus makes every POST answer code without storing anything.
func (s *Store) SetPostStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postCode = code
}

// Data returns a copy of the stored map.
func (s *Store) Data() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Requests returns the number of GET and POST requests served.
func (s *Store) Requests() (gets, posts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets, s.posts
}
