package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingReturnsEmptyData(t *testing.T) {
	store := NewInMemoryStore()

	rec, err := store.Get(1, "MoodMate")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.UserID)
	assert.Equal(t, "MoodMate", rec.AgentName)
	require.NotNil(t, rec.Data)
	assert.Empty(t, rec.Data)
}

func TestPutGetRoundTrip(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Put(1, "MoodMate", map[string]any{"lastMood": "happy"})
	require.NoError(t, err)

	rec, err := store.Get(1, "MoodMate")
	require.NoError(t, err)
	assert.Equal(t, "happy", rec.Data["lastMood"])
	assert.False(t, rec.LastUpdated.IsZero())
}

func TestPutReplacesWholeBlob(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Put(1, "MoodMate", map[string]any{"lastMood": "happy", "successfulRuns": 2})
	require.NoError(t, err)
	_, err = store.Put(1, "MoodMate", map[string]any{"lastMood": "sad"})
	require.NoError(t, err)

	rec, err := store.Get(1, "MoodMate")
	require.NoError(t, err)
	assert.Equal(t, "sad", rec.Data["lastMood"])
	assert.NotContains(t, rec.Data, "successfulRuns")
}

func TestDefensiveCopies(t *testing.T) {
	store := NewInMemoryStore()

	input := map[string]any{"lastMood": "calm"}
	_, err := store.Put(1, "MoodMate", input)
	require.NoError(t, err)

	// Mutating the caller's map after Put must not affect stored state.
	input["lastMood"] = "mutated"

	rec, err := store.Get(1, "MoodMate")
	require.NoError(t, err)
	assert.Equal(t, "calm", rec.Data["lastMood"])

	// Mutating a returned map must not affect subsequent reads.
	rec.Data["lastMood"] = "mutated"
	again, err := store.Get(1, "MoodMate")
	require.NoError(t, err)
	assert.Equal(t, "calm", again.Data["lastMood"])
}

func TestPairsAreIndependent(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Put(1, "MoodMate", map[string]any{"lastMood": "happy"})
	require.NoError(t, err)
	_, err = store.Put(2, "MoodMate", map[string]any{"lastMood": "sad"})
	require.NoError(t, err)
	_, err = store.Put(1, "MindPal", map[string]any{"stressLevel": 4})
	require.NoError(t, err)

	rec, err := store.Get(1, "MoodMate")
	require.NoError(t, err)
	assert.Equal(t, "happy", rec.Data["lastMood"])

	rec, err = store.Get(2, "MoodMate")
	require.NoError(t, err)
	assert.Equal(t, "sad", rec.Data["lastMood"])
}
