package wellness

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/wellmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingUserStore breaks user lookup while leaving the rest of the store
// untouched.
type failingUserStore struct {
	core.WellnessStore
}

func (failingUserStore) GetUser(int) (core.User, error) {
	return core.User{}, errors.New("connection reset")
}

func TestContextProviderNeutralDefaultOnFailure(t *testing.T) {
	p := NewContextProvider(failingUserStore{WellnessStore: NewInMemoryStore()}, nil)

	uc := p.UserContext(context.Background(), 1)
	assert.Equal(t, core.NeutralUserContext(), uc)
}

func TestContextProviderSnapshot(t *testing.T) {
	store := NewInMemoryStore()
	user, err := SeedDemoUser(store)
	require.NoError(t, err)

	for _, mood := range []string{"sad", "calm", "happy"} {
		_, err := store.CreateMoodEntry(user.ID, mood)
		require.NoError(t, err)
	}
	_, err = store.CreateJournalEntry(user.ID, "a long reflection about the week", "")
	require.NoError(t, err)

	p := NewContextProvider(store, nil)
	uc := p.UserContext(context.Background(), user.ID)

	assert.Equal(t, "happy", uc.CurrentMood, "mood entries advance the current mood")
	assert.Equal(t, 7, uc.StreakDays)
	require.NotEmpty(t, uc.RecentMoods)
	assert.Equal(t, "happy", uc.RecentMoods[0])
	require.Len(t, uc.RecentJournalThemes, 1)
}

func TestContextProviderBlankMoodDefaults(t *testing.T) {
	store := NewInMemoryStore()
	user, err := store.CreateUser("alex")
	require.NoError(t, err)

	blank := ""
	_, err = store.UpdateUser(user.ID, core.UserUpdate{CurrentMood: &blank})
	require.NoError(t, err)

	p := NewContextProvider(store, nil)
	uc := p.UserContext(context.Background(), user.ID)
	assert.Equal(t, "neutral", uc.CurrentMood)
}
