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

func TestMindPalConcerningMoodSafetyAssessment(t *testing.T) {
	m := NewMindPal()

	out := m.Run(context.Background(), core.Input{core.InputKeyCurrentMood: "depressed"}, 1)

	require.True(t, out.Success)
	assert.Equal(t, "MindPal", out.AgentName)

	assessment, ok := out.Payload["safetyAssessment"].(map[string]any)
	require.True(t, ok, "the safety assessment rides along with the support payload")
	assert.Equal(t, "high", assessment["riskLevel"])
	assert.Equal(t, true, assessment["needsImmediateSupport"])
	assert.Equal(t, true, assessment["recommendProfessionalHelp"])
	assert.NotEmpty(t, assessment["crisisResources"])

	assert.NotEmpty(t, out.Payload["journalPrompt"])
	assert.NotEmpty(t, out.Payload["affirmation"])
	assert.Equal(t, 0.92, out.Payload["confidence"])
}

func TestMindPalCalmMoodLowRisk(t *testing.T) {
	m := NewMindPal()

	out := m.Run(context.Background(), core.Input{core.InputKeyCurrentMood: "calm"}, 1)

	require.True(t, out.Success)
	assessment, ok := out.Payload["safetyAssessment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "low", assessment["riskLevel"])
	assert.Equal(t, false, assessment["needsImmediateSupport"])
	assert.NotContains(t, assessment, "crisisResources")
}

func TestMindPalStressedRegulationTechniques(t *testing.T) {
	m := NewMindPal()

	out := m.Run(context.Background(), core.Input{core.InputKeyCurrentMood: "stressed"}, 1)

	require.True(t, out.Success)
	techniques, ok := out.Payload["regulationTechniques"].([]string)
	require.True(t, ok)
	assert.Contains(t, techniques, "Body scan meditation")

	exercises, ok := out.Payload["mindfulnessExercises"].([]mindfulnessExercise)
	require.True(t, ok)
	require.Len(t, exercises, 2)
	assert.Equal(t, "Progressive Body Scan", exercises[0].Name)
}

func TestSelectMindfulnessExercises(t *testing.T) {
	high := selectMindfulnessExercises("neutral", 9)
	require.Len(t, high, 2)
	assert.Equal(t, "4-7-8 Breathing", high[0].Name, "high intensity always starts with breathing")

	sad := selectMindfulnessExercises("sad", 5)
	assert.Equal(t, "Loving-Kindness Meditation", sad[0].Name)
}

func TestMindPalSaveJournalEntry(t *testing.T) {
	store := wellness.NewInMemoryStore()
	user, err := store.CreateUser("sarah")
	require.NoError(t, err)

	t.Run("without a remembered prompt", func(t *testing.T) {
		m := NewMindPal(func(o *Options) {
			o.Wellness = store
		})

		entry, err := m.SaveJournalEntry(context.Background(), user.ID, "a quiet day, mostly")
		require.NoError(t, err)
		assert.Equal(t, defaultJournalPrompt, entry.Prompt)
	})

	t.Run("with the last generated prompt", func(t *testing.T) {
		mem := memory.NewInMemoryStore()
		m := NewMindPal(func(o *Options) {
			o.Wellness = store
			o.Memory = mem
		})

		// A run records its journal prompt in memory first.
		out := m.Run(context.Background(), core.Input{core.InputKeyCurrentMood: "stressed"}, user.ID)
		require.True(t, out.Success)

		entry, err := m.SaveJournalEntry(context.Background(), user.ID, "work is piling up again")
		require.NoError(t, err)
		assert.NotEqual(t, defaultJournalPrompt, entry.Prompt)
		assert.NotEmpty(t, entry.Prompt)
	})

	t.Run("without a wellness store", func(t *testing.T) {
		m := NewMindPal()
		_, err := m.SaveJournalEntry(context.Background(), user.ID, "lost words")
		assert.Equal(t, core.ErrorKindStorage, core.KindOf(err))
	})
}
