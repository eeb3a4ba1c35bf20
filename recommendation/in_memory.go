package recommendation

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/wellmesh/core"
)

// InMemoryStore is a trivial in-process core.RecommendationStore useful for
// tests, examples and single-process prototypes. Records are copied on create
// and retrieval to avoid accidental external mutation of stored content.
//
// This implementation is intentionally minimal; it does not enforce retention
// limits or eviction. For production, prefer a durable implementation that
// survives process restarts.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]core.Recommendation
	order   []string // creation order for stable newest-first listings
}

// NewInMemoryStore returns an empty in-memory recommendation store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]core.Recommendation)}
}

// Create appends a new active recommendation with a generated id.
func (s *InMemoryStore) Create(userID int, agentName, recType string, content map[string]any) (core.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := core.Recommendation{
		ID:        uuid.NewString(),
		UserID:    userID,
		AgentName: agentName,
		Type:      recType,
		Content:   copyContent(content),
		Active:    true,
		CreatedAt: time.Now(),
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	return copyRecord(rec), nil
}

// Get returns the record by id regardless of its active flag, or ErrNotFound.
func (s *InMemoryStore) Get(id string) (core.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return core.Recommendation{}, ErrNotFound
	}
	return copyRecord(rec), nil
}

// ListActive returns active records for the user sorted newest-first,
// optionally filtered by agent name ("" matches all agents).
func (s *InMemoryStore) ListActive(userID int, agentName string) ([]core.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Recommendation, 0)
	for _, id := range s.order {
		rec := s.records[id]
		if rec.UserID != userID || !rec.Active {
			continue
		}
		if agentName != "" && rec.AgentName != agentName {
			continue
		}
		result = append(result, copyRecord(rec))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Deactivate soft-deletes the record or returns ErrNotFound. Content is left
// untouched.
func (s *InMemoryStore) Deactivate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	rec.Active = false
	s.records[id] = rec
	return nil
}

func copyRecord(rec core.Recommendation) core.Recommendation {
	rec.Content = copyContent(rec.Content)
	return rec
}

func copyContent(content map[string]any) map[string]any {
	cp := make(map[string]any, len(content))
	for k, v := range content {
		cp[k] = v
	}
	return cp
}
