package wellness

import (
	"testing"

	"github.com/hupe1980/wellmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDefaults(t *testing.T) {
	store := NewInMemoryStore()

	user, err := store.CreateUser("sarah")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "neutral", user.CurrentMood)
	assert.Zero(t, user.StreakDays)

	second, err := store.CreateUser("alex")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestGetUserByUsername(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.CreateUser("sarah")
	require.NoError(t, err)

	user, err := store.GetUserByUsername("sarah")
	require.NoError(t, err)
	assert.Equal(t, "sarah", user.Username)

	_, err = store.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMoodEntryUpdatesCurrentMood(t *testing.T) {
	store := NewInMemoryStore()
	user, err := store.CreateUser("sarah")
	require.NoError(t, err)

	_, err = store.CreateMoodEntry(user.ID, "stressed")
	require.NoError(t, err)

	got, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "stressed", got.CurrentMood)
}

func TestMoodEntriesNewestFirstWithLimit(t *testing.T) {
	store := NewInMemoryStore()
	user, err := store.CreateUser("sarah")
	require.NoError(t, err)

	for _, mood := range []string{"sad", "neutral", "happy"} {
		_, err := store.CreateMoodEntry(user.ID, mood)
		require.NoError(t, err)
	}

	entries, err := store.MoodEntries(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "happy", entries[0].Mood)
	assert.Equal(t, "neutral", entries[1].Mood)
}

func TestUpdateUserPartial(t *testing.T) {
	store := NewInMemoryStore()
	user, err := store.CreateUser("sarah")
	require.NoError(t, err)

	streak := 7
	updated, err := store.UpdateUser(user.ID, core.UserUpdate{StreakDays: &streak})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.StreakDays)
	assert.Equal(t, "neutral", updated.CurrentMood, "unset fields stay untouched")
}

func TestJournalEntries(t *testing.T) {
	store := NewInMemoryStore()
	user, err := store.CreateUser("sarah")
	require.NoError(t, err)

	entry, err := store.CreateJournalEntry(user.ID, "today was good", "Daily reflection")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	entries, err := store.JournalEntries(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Daily reflection", entries[0].Prompt)
}

func TestMetricsWindow(t *testing.T) {
	store := NewInMemoryStore()
	user, err := store.CreateUser("sarah")
	require.NoError(t, err)

	_, err = store.CreateMetrics(user.ID, core.MetricsSample{EnergyLevel: 6, StressLevel: 4})
	require.NoError(t, err)

	records, err := store.Metrics(user.ID, 7)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 6, records[0].EnergyLevel)

	none, err := store.Metrics(99, 7)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSeedDemoUser(t *testing.T) {
	store := NewInMemoryStore()

	user, err := SeedDemoUser(store)
	require.NoError(t, err)
	assert.Equal(t, "sarah", user.Username)
	assert.Equal(t, "focused", user.CurrentMood)
	assert.Equal(t, 7, user.StreakDays)
}
