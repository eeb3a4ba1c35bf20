package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/wellmesh/core"
)

// InMemoryStore is a process-local core.MemoryStore keeping one blob per
// (userID, agentName) pair. Reads return defensive copies so callers cannot
// mutate stored state; writes replace the whole blob (last writer wins).
//
// Concurrency: protected by RWMutex. There is no read-modify-write isolation
// across Get/Put pairs; callers that need serialized updates for the same key
// must coordinate externally.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]core.AgentMemory
}

// NewInMemoryStore returns an empty in-memory memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]core.AgentMemory)}
}

func key(userID int, agentName string) string {
	return fmt.Sprintf("%d-%s", userID, agentName)
}

// Get returns the memory record for the pair, defaulting to an empty Data map
// when no record exists. The returned map is a shallow copy.
func (s *InMemoryStore) Get(userID int, agentName string) (core.AgentMemory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[key(userID, agentName)]
	if !ok {
		return core.AgentMemory{UserID: userID, AgentName: agentName, Data: map[string]any{}}, nil
	}
	return copyRecord(rec), nil
}

// Put replaces the blob for the pair and advances LastUpdated. The input map
// is copied before storage.
func (s *InMemoryStore) Put(userID int, agentName string, data map[string]any) (core.AgentMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := core.AgentMemory{
		UserID:      userID,
		AgentName:   agentName,
		Data:        copyData(data),
		LastUpdated: time.Now(),
	}
	s.records[key(userID, agentName)] = rec
	return copyRecord(rec), nil
}

func copyRecord(rec core.AgentMemory) core.AgentMemory {
	rec.Data = copyData(rec.Data)
	return rec
}

func copyData(data map[string]any) map[string]any {
	cp := make(map[string]any, len(data))
	for k, v := range data {
		cp[k] = v
	}
	return cp
}
