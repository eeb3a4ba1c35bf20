package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexGenieStressedYogaPlan(t *testing.T) {
	f := NewFlexGenie()

	out := f.Run(context.Background(), core.Input{core.InputKeyCurrentMood: "stressed", core.InputKeyTriggeringAgent: "MoodMate"}, 1)

	require.True(t, out.Success)
	assert.Equal(t, "FlexGenie", out.AgentName)
	assert.Equal(t, "yoga", out.Payload["workoutType"])
	assert.Empty(t, out.CollaborationTriggers)

	videos, ok := out.Payload["videoRecommendations"].([]content.WorkoutVideo)
	require.True(t, ok)
	require.NotEmpty(t, videos)
	assert.Equal(t, content.FallbackWorkoutVideos("stressed"), videos)

	adaptation, ok := out.Payload["energyAdaptation"].(map[string]any)
	require.True(t, ok)
	// Stressed energy 4 averaged with the default 6, then the -2 modifier.
	assert.Equal(t, 5, adaptation["energyLevel"])
	assert.Equal(t, 3, adaptation["adaptedIntensity"])

	guidance, ok := out.Payload["recoveryGuidance"].([]string)
	require.True(t, ok)
	assert.Contains(t, guidance, "Finish with 2 minutes of slow breathing")
}

func TestAssessEnergyLevel(t *testing.T) {
	assert.Equal(t, 5, assessEnergyLevel("stressed", 0), "baseline 4 averaged with default 6")
	assert.Equal(t, 8, assessEnergyLevel("excited", 7))
	assert.Equal(t, 6, assessEnergyLevel("unknown", 0))
}

func TestAdaptIntensity(t *testing.T) {
	assert.Equal(t, 3, adaptIntensity("stressed", 5))
	assert.Equal(t, 1, adaptIntensity("tired", 2), "clamped at the floor")
	assert.Equal(t, 10, adaptIntensity("excited", 10), "clamped at the ceiling")
	assert.Equal(t, 6, adaptIntensity("neutral", 6), "no modifier for untracked moods")
}

func TestDetermineWorkoutType(t *testing.T) {
	assert.Equal(t, "yoga", determineWorkoutType("happy", 2), "low intensity always means yoga")
	assert.Equal(t, "yoga", determineWorkoutType("anxious", 5))
	assert.Equal(t, "hiit", determineWorkoutType("happy", 9))
	assert.Equal(t, "hiit", determineWorkoutType("excited", 6))
	assert.Equal(t, "strength", determineWorkoutType("neutral", 6))
}

func TestFlexGenieRemembersWorkout(t *testing.T) {
	f := NewFlexGenie()

	out := f.Run(context.Background(), core.Input{core.InputKeyCurrentMood: "excited"}, 1)

	require.True(t, out.Success)
	var mem core.FitnessMemory
	require.NoError(t, core.DecodeMemoryData(out.Memory, &mem))
	assert.Equal(t, "hiit", mem.LastWorkoutType)
	assert.Equal(t, 1, mem.SuccessfulRuns)
}
