package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/wellmesh/core"
	"github.com/hupe1980/wellmesh/memory"
	"github.com/hupe1980/wellmesh/wellness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodMateRunEmptyInput(t *testing.T) {
	m := NewMoodMate()

	out := m.Run(context.Background(), core.Input{}, 1)

	require.True(t, out.Success)
	assert.Equal(t, "MoodMate", out.AgentName)
	assert.Equal(t, "neutral", out.Payload["mood"])
	assert.Empty(t, out.CollaborationTriggers)
}

func TestMoodMateRunTracksMoodWithMusic(t *testing.T) {
	store := wellness.NewInMemoryStore()
	user, err := store.CreateUser("sarah")
	require.NoError(t, err)

	m := NewMoodMate(func(o *Options) {
		o.Wellness = store
	})

	out := m.Run(context.Background(), core.Input{core.InputKeyMood: "happy"}, user.ID)

	require.True(t, out.Success)
	assert.Equal(t, "happy", out.Payload["mood"])

	music, ok := out.Payload["music"].(map[string]any)
	require.True(t, ok, "the music step feeds the payload")
	assert.NotEmpty(t, music["playlists"])

	tracking, ok := out.Payload["tracking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, tracking["saved"])

	// The mood entry landed in the wellness store.
	got, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "happy", got.CurrentMood)
}

func TestMoodMateDifficultMoodTriggersCollaboration(t *testing.T) {
	m := NewMoodMate()

	out := m.Run(context.Background(), core.Input{core.InputKeyMood: "stressed"}, 1)

	require.True(t, out.Success)
	assert.Equal(t, []string{"NutriCoach", "FlexGenie", "MindPal"}, out.CollaborationTriggers)

	out = m.Run(context.Background(), core.Input{core.InputKeyMood: "happy"}, 1)
	require.True(t, out.Success)
	assert.Empty(t, out.CollaborationTriggers, "positive moods run solo")
}

func TestMoodMateDetectsMoodFromMessage(t *testing.T) {
	m := NewMoodMate()

	out := m.Run(context.Background(), core.Input{core.InputKeyMessage: "work has me completely overwhelmed"}, 1)

	require.True(t, out.Success)
	assert.Equal(t, "overwhelmed", out.Payload["mood"])
}

func TestMoodMateMemoryAccumulates(t *testing.T) {
	mem := memory.NewInMemoryStore()
	m := NewMoodMate(func(o *Options) {
		o.Memory = mem
	})

	ctx := context.Background()
	require.True(t, m.Run(ctx, core.Input{core.InputKeyMood: "calm"}, 1).Success)
	require.True(t, m.Run(ctx, core.Input{core.InputKeyMood: "happy"}, 1).Success)

	record, err := mem.Get(1, "MoodMate")
	require.NoError(t, err)

	var mm core.MoodMemory
	require.NoError(t, core.DecodeMemoryData(record.Data, &mm))
	assert.Equal(t, 2, mm.SuccessfulRuns)
	assert.Equal(t, "happy", mm.LastMood)
	require.Len(t, mm.MoodHistory, 2)
	assert.Equal(t, "calm", mm.MoodHistory[0].Mood)
}

func TestDetectMood(t *testing.T) {
	uc := core.NeutralUserContext()

	assert.Equal(t, "anxious", detectMood("I feel anxious about tomorrow", uc))
	assert.Equal(t, "excited", detectMood("what a surprise that was", uc), "sentiment labels map onto moods")

	uc.CurrentMood = "focused"
	assert.Equal(t, "focused", detectMood("nothing notable", uc), "falls back to the current mood")
}

func TestMoodTrend(t *testing.T) {
	samples := func(scores ...float64) []core.MoodSample {
		out := make([]core.MoodSample, len(scores))
		for i, s := range scores {
			out[i] = core.MoodSample{Mood: "x", Score: s}
		}
		return out
	}

	assert.Equal(t, "insufficient_data", moodTrend(samples(1, 2, 3)))
	assert.Equal(t, "improving", moodTrend(samples(1, 1, 1, 3, 3, 3)))
	assert.Equal(t, "declining", moodTrend(samples(4, 4, 4, 2, 2, 2)))
	assert.Equal(t, "stable", moodTrend(samples(3, 3, 3, 3, 3, 3)))
}
