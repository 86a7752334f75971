package server

import (
	"strings"
	"sync"
	"time"

	"vertical_content_generator/generator"
)

// StoredResult keeps one finished generation so the UI can re-fetch or
// preview it. Nothing survives a process restart.
type StoredResult struct {
	ID        string                  `json:"id"`
	Kind      string                  `json:"kind"` // captions | ideas | combined
	Brief     string                  `json:"brief"`
	Industry  generator.Industry      `json:"industry"`
	Model     generator.ModelChoice   `json:"model"`
	Items     []generator.ContentItem `json:"items,omitempty"`
	Captions  []generator.ContentItem `json:"captions,omitempty"`
	Ideas     []generator.ContentItem `json:"ideas,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

type resultStore struct {
	mu      sync.Mutex
	results map[string]*StoredResult
}

func newStore() *resultStore {
	return &resultStore{results: make(map[string]*StoredResult)}
}

func (s *resultStore) set(id string, res *StoredResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[id] = res
}

func (s *resultStore) get(id string) (*StoredResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.results[id]
	return res, ok
}

func newResultID() string {
	return strings.ReplaceAll(time.Now().Format("20060102T150405.000000000"), ".", "")
}
