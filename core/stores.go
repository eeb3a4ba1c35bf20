package core

import (
	"context"
	"time"
)

// Recommendation is a persisted, typed output record produced by an agent's
// finalize step. Content is immutable once created; Active may be flipped
// false (soft delete) but records are never hard-deleted.
type Recommendation struct {
	ID        string
	UserID    int
	AgentName string
	Type      string
	Content   map[string]any
	Active    bool
	CreatedAt time.Time
}

// RecommendationStore persists recommendations append-only.
type RecommendationStore interface {
	// Create appends a new active recommendation and returns it.
	Create(userID int, agentName, recType string, content map[string]any) (Recommendation, error)

	// Get returns the record by id regardless of its active flag.
	Get(id string) (Recommendation, error)

	// ListActive returns active records for the user sorted newest-first,
	// optionally filtered by agent name ("" matches all agents).
	ListActive(userID int, agentName string) ([]Recommendation, error)

	// Deactivate soft-deletes the record.
	Deactivate(id string) error
}

// User is a wellness application account.
type User struct {
	ID          int
	Username    string
	CurrentMood string
	StreakDays  int
	CreatedAt   time.Time
}

// UserUpdate carries optional field updates for a user record.
type UserUpdate struct {
	CurrentMood *string
	StreakDays  *int
}

// MoodEntry is one logged mood reading.
type MoodEntry struct {
	ID        string
	UserID    int
	Mood      string
	Timestamp time.Time
}

// JournalEntry is one saved journal text, optionally tied to the prompt that
// elicited it.
type JournalEntry struct {
	ID        string
	UserID    int
	Content   string
	Prompt    string
	Timestamp time.Time
}

// MetricsSample is the caller-supplied portion of a wellness metrics record.
type MetricsSample struct {
	EnergyLevel      int
	StressLevel      int
	FocusTime        int
	HydrationGlasses int
}

// WellnessMetrics is one daily metrics record.
type WellnessMetrics struct {
	ID     string
	UserID int
	Date   time.Time
	MetricsSample
}

// WellnessStore persists users, mood entries, journal entries and metrics.
type WellnessStore interface {
	CreateUser(username string) (User, error)
	GetUser(id int) (User, error)
	GetUserByUsername(username string) (User, error)
	UpdateUser(id int, update UserUpdate) (User, error)

	// CreateMoodEntry records a mood and updates the user's current mood.
	CreateMoodEntry(userID int, mood string) (MoodEntry, error)
	// MoodEntries returns entries newest-first, at most limit (10 if <= 0).
	MoodEntries(userID, limit int) ([]MoodEntry, error)

	CreateJournalEntry(userID int, content, prompt string) (JournalEntry, error)
	// JournalEntries returns entries newest-first, at most limit (10 if <= 0).
	JournalEntries(userID, limit int) ([]JournalEntry, error)

	CreateMetrics(userID int, sample MetricsSample) (WellnessMetrics, error)
	// Metrics returns records within the trailing day window (7 if <= 0),
	// newest-first.
	Metrics(userID, days int) ([]WellnessMetrics, error)
}

// UserContext is the lightweight user snapshot agents plan against.
type UserContext struct {
	CurrentMood         string
	StreakDays          int
	RecentMoods         []string
	RecentJournalThemes []string
}

// NeutralUserContext is the fallback context used when user data cannot be
// loaded.
func NeutralUserContext() UserContext {
	return UserContext{CurrentMood: "neutral"}
}

// UserContextProvider assembles a best-effort user context. Implementations
// return NeutralUserContext on any failure instead of an error.
type UserContextProvider interface {
	UserContext(ctx context.Context, userID int) UserContext
}
