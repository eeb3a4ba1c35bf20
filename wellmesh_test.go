package wellmesh

import (
	"context"
	"testing"

	"github.com/hupe1980/wellmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllAgents(t *testing.T) {
	mesh := New()

	assert.Equal(t, []string{"MoodMate", "NutriCoach", "FlexGenie", "MindPal", "InsightBot"},
		mesh.Engine().AgentNames())
}

func TestSeedDemoUserIdempotent(t *testing.T) {
	mesh := New()

	user, err := mesh.SeedDemoUser()
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "sarah", user.Username)
	assert.Equal(t, 7, user.StreakDays)

	again, err := mesh.SeedDemoUser()
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestMoodUpdateEndToEnd(t *testing.T) {
	mesh := New()
	user, err := mesh.SeedDemoUser()
	require.NoError(t, err)

	result, err := mesh.RunMoodUpdate(context.Background(), "stressed", user.ID)
	require.NoError(t, err)

	require.True(t, result.Primary.Success)
	assert.Equal(t, "stressed", result.Primary.Payload["mood"])

	var collaborators []string
	for _, collab := range result.Collaborations {
		require.True(t, collab.Output.Success)
		collaborators = append(collaborators, collab.AgentName)
	}
	assert.Equal(t, []string{"NutriCoach", "FlexGenie", "MindPal"}, collaborators)

	// Every successful run left an active recommendation behind.
	recs, err := mesh.ActiveRecommendations(user.ID, "")
	require.NoError(t, err)
	types := map[string]bool{}
	for _, rec := range recs {
		types[rec.Type] = true
	}
	assert.True(t, types["mood"])
	assert.True(t, types["nutrition"])
	assert.True(t, types["fitness"])
	assert.True(t, types["mental_wellness"])
}

func TestInsightsAfterActivity(t *testing.T) {
	mesh := New()
	user, err := mesh.SeedDemoUser()
	require.NoError(t, err)

	for _, mood := range []string{"stressed", "tired", "neutral", "calm", "happy", "happy", "excited"} {
		_, err := mesh.RunMoodUpdate(context.Background(), mood, user.ID)
		require.NoError(t, err)
	}

	out, err := mesh.RunInsightsAnalysis(context.Background(), user.ID)
	require.NoError(t, err)
	require.True(t, out.Success)
	assert.Contains(t, out.Payload, "trends")
	assert.Contains(t, out.Payload, "crossAgentInsights")
}

func TestChatJournalFlow(t *testing.T) {
	mesh := New()
	user, err := mesh.SeedDemoUser()
	require.NoError(t, err)

	result, err := mesh.Chat(context.Background(), "MindPal",
		"I'd like to journal about what made today feel heavy", nil, user.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Response)
	require.Len(t, result.Actions, 1)
	assert.Equal(t, core.ActionJournalSave, result.Actions[0].Type)
	assert.True(t, result.Actions[0].Success)
}

func TestDeactivateRecommendation(t *testing.T) {
	mesh := New()
	user, err := mesh.SeedDemoUser()
	require.NoError(t, err)

	_, err = mesh.RunAgent(context.Background(), "NutriCoach", core.Input{}, user.ID)
	require.NoError(t, err)

	recs, err := mesh.ActiveRecommendations(user.ID, "NutriCoach")
	require.NoError(t, err)
	require.Len(t, recs, 1)

	require.NoError(t, mesh.Deactivate(recs[0].ID))

	recs, err = mesh.ActiveRecommendations(user.ID, "NutriCoach")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestInstancesAreIsolated(t *testing.T) {
	first := New()
	second := New()

	user, err := first.SeedDemoUser()
	require.NoError(t, err)

	_, err = first.RunMoodUpdate(context.Background(), "stressed", user.ID)
	require.NoError(t, err)

	recs, err := second.ActiveRecommendations(user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, recs, "instances never share stores")
}
