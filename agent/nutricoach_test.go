package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutriCoachStressedPlan(t *testing.T) {
	n := NewNutriCoach()

	out := n.Run(context.Background(), core.Input{core.InputKeyCurrentMood: "stressed", core.InputKeyTriggeringAgent: "MoodMate"}, 1)

	require.True(t, out.Success)
	assert.Equal(t, "NutriCoach", out.AgentName)
	assert.Equal(t, "stressed", out.Payload["mood"])
	assert.Empty(t, out.CollaborationTriggers, "collaboration targets never re-trigger")

	plan, ok := out.Payload["nutritionPlan"].(content.NutritionPlan)
	require.True(t, ok)
	assert.NotEmpty(t, plan.Meals)
	assert.Contains(t, plan.Adaptations, "Avoid excessive caffeine")

	hydration, ok := out.Payload["hydrationPlan"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"herbal_teas", "electrolytes"}, hydration["enhancements"])

	assert.NotEmpty(t, out.Payload["shoppingList"])
	assert.NotNil(t, out.Payload["mealSchedule"])
	assert.NotNil(t, out.Payload["nutritionalInsights"])
}

func TestNutriCoachNeutralHydration(t *testing.T) {
	n := NewNutriCoach()

	out := n.Run(context.Background(), core.Input{}, 1)

	require.True(t, out.Success)
	hydration, ok := out.Payload["hydrationPlan"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"lemon_water", "plain_water"}, hydration["enhancements"])
}

func TestCollaborationMoodPrecedence(t *testing.T) {
	uc := core.NeutralUserContext()
	uc.CurrentMood = "calm"

	assert.Equal(t, "stressed", collaborationMood(core.Input{core.InputKeyCurrentMood: "stressed", core.InputKeyMood: "happy"}, uc))
	assert.Equal(t, "happy", collaborationMood(core.Input{core.InputKeyMood: "happy"}, uc))
	assert.Equal(t, "calm", collaborationMood(core.Input{}, uc))
	assert.Equal(t, "neutral", collaborationMood(core.Input{}, core.UserContext{}))
}

func TestShoppingListDeduplicates(t *testing.T) {
	meals := []content.Meal{
		{Name: "Oats", Ingredients: []string{"oats", "berries"}},
		{Name: "Parfait", Ingredients: []string{"berries", "yogurt"}},
	}
	assert.Equal(t, []string{"oats", "berries", "yogurt"}, shoppingList(meals))
}
