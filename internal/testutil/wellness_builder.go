package testutil

import (
	"github.com/hupe1980/wellmesh/core"
)

// WellnessBuilder seeds a wellness store with fluent chaining for tests.
// Example:
//
//	userID := NewWellnessBuilder(store).User("sarah").
//	    Moods("sad", "neutral", "happy").
//	    Metrics(core.MetricsSample{EnergyLevel: 6, StressLevel: 4}).
//	    Build()
type WellnessBuilder struct {
	store  core.WellnessStore
	userID int
}

// NewWellnessBuilder creates a builder over the given store. Seeding targets
// user id 1 until User is called.
func NewWellnessBuilder(store core.WellnessStore) *WellnessBuilder {
	return &WellnessBuilder{store: store, userID: 1}
}

// User creates a user with the given username and targets it for subsequent
// seeding (chainable). Store errors are ignored; the in-memory store never
// fails.
func (b *WellnessBuilder) User(username string) *WellnessBuilder {
	if user, err := b.store.CreateUser(username); err == nil {
		b.userID = user.ID
	}
	return b
}

// Mood sets the user's current mood without logging an entry (chainable).
func (b *WellnessBuilder) Mood(mood string) *WellnessBuilder {
	_, _ = b.store.UpdateUser(b.userID, core.UserUpdate{CurrentMood: &mood})
	return b
}

// Streak sets the user's streak days (chainable).
func (b *WellnessBuilder) Streak(days int) *WellnessBuilder {
	_, _ = b.store.UpdateUser(b.userID, core.UserUpdate{StreakDays: &days})
	return b
}

// Moods logs mood entries oldest-first (chainable).
func (b *WellnessBuilder) Moods(moods ...string) *WellnessBuilder {
	for _, mood := range moods {
		_, _ = b.store.CreateMoodEntry(b.userID, mood)
	}
	return b
}

// Journal saves a journal entry with an empty prompt (chainable).
func (b *WellnessBuilder) Journal(content string) *WellnessBuilder {
	_, _ = b.store.CreateJournalEntry(b.userID, content, "")
	return b
}

// Metrics records daily metrics samples dated now (chainable).
func (b *WellnessBuilder) Metrics(samples ...core.MetricsSample) *WellnessBuilder {
	for _, sample := range samples {
		_, _ = b.store.CreateMetrics(b.userID, sample)
	}
	return b
}

// Build returns the seeded user's id.
func (b *WellnessBuilder) Build() int {
	return b.userID
}
