package wellness

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/wellmesh/core"
)

// InMemoryStore is a process-local core.WellnessStore. Users get small
// sequential ids; entries get uuids. All reads return copies.
type InMemoryStore struct {
	mu       sync.RWMutex
	users    map[int]core.User
	moods    []core.MoodEntry
	journals []core.JournalEntry
	metrics  []core.WellnessMetrics
	nextID   int
}

// NewInMemoryStore returns an empty in-memory wellness store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[int]core.User), nextID: 1}
}

// CreateUser creates a user with mood "neutral" and a zero streak.
func (s *InMemoryStore) CreateUser(username string) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := core.User{
		ID:          s.nextID,
		Username:    username,
		CurrentMood: "neutral",
		StreakDays:  0,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.users[user.ID] = user
	return user, nil
}

// GetUser returns the user by id or ErrUserNotFound.
func (s *InMemoryStore) GetUser(id int) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return core.User{}, ErrUserNotFound
	}
	return user, nil
}

// GetUserByUsername returns the user by username or ErrUserNotFound.
func (s *InMemoryStore) GetUserByUsername(username string) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return core.User{}, ErrUserNotFound
}

// UpdateUser applies the non-nil fields of update.
func (s *InMemoryStore) UpdateUser(id int, update core.UserUpdate) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return core.User{}, ErrUserNotFound
	}
	if update.CurrentMood != nil {
		user.CurrentMood = *update.CurrentMood
	}
	if update.StreakDays != nil {
		user.StreakDays = *update.StreakDays
	}
	s.users[id] = user
	return user, nil
}

// CreateMoodEntry records a mood reading and updates the user's current mood
// when the user exists. Unknown users still get an entry so agents can log
// moods before onboarding completes.
func (s *InMemoryStore) CreateMoodEntry(userID int, mood string) (core.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := core.MoodEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mood:      mood,
		Timestamp: time.Now(),
	}
	s.moods = append(s.moods, entry)
	if user, ok := s.users[userID]; ok {
		user.CurrentMood = mood
		s.users[userID] = user
	}
	return entry, nil
}

// MoodEntries returns the user's entries newest-first, at most limit (10 when
// limit <= 0).
func (s *InMemoryStore) MoodEntries(userID, limit int) ([]core.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 10
	}
	result := make([]core.MoodEntry, 0, limit)
	for _, entry := range s.moods {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// CreateJournalEntry saves a journal text with its optional prompt.
func (s *InMemoryStore) CreateJournalEntry(userID int, content, prompt string) (core.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := core.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Prompt:    prompt,
		Timestamp: time.Now(),
	}
	s.journals = append(s.journals, entry)
	return entry, nil
}

// JournalEntries returns the user's entries newest-first, at most limit (10
// when limit <= 0).
func (s *InMemoryStore) JournalEntries(userID, limit int) ([]core.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 10
	}
	result := make([]core.JournalEntry, 0, limit)
	for _, entry := range s.journals {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// CreateMetrics records a daily metrics sample dated now.
func (s *InMemoryStore) CreateMetrics(userID int, sample core.MetricsSample) (core.WellnessMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := core.WellnessMetrics{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          time.Now(),
		MetricsSample: sample,
	}
	s.metrics = append(s.metrics, record)
	return record, nil
}

// Metrics returns records within the trailing day window (7 when days <= 0),
// newest-first.
func (s *InMemoryStore) Metrics(userID, days int) ([]core.WellnessMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	result := make([]core.WellnessMetrics, 0)
	for _, record := range s.metrics {
		if record.UserID == userID && record.Date.After(cutoff) {
			result = append(result, record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// SeedDemoUser creates the demo account used by examples and tests: username
// "sarah", current mood "focused", a 7 day streak.
func SeedDemoUser(store core.WellnessStore) (core.User, error) {
	user, err := store.CreateUser("sarah")
	if err != nil {
		return core.User{}, err
	}
	mood := "focused"
	streak := 7
	return store.UpdateUser(user.ID, core.UserUpdate{CurrentMood: &mood, StreakDays: &streak})
}
