package content

import (
	"context"
	"testing"

	"github.com/hupe1980/wellmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticExtractIntent(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	t.Run("mood words trigger a mood update", func(t *testing.T) {
		intent, err := s.ExtractIntent(ctx, "I'm feeling really stressed today", "MoodMate")
		require.NoError(t, err)
		assert.True(t, intent.NeedsAction)
		assert.Equal(t, core.ActionMoodUpdate, intent.ActionType)
		assert.Contains(t, intent.Entities, "mood")
	})

	t.Run("journal keywords only count for MindPal", func(t *testing.T) {
		intent, err := s.ExtractIntent(ctx, "I want to journal about my day", "MindPal")
		require.NoError(t, err)
		assert.Equal(t, core.ActionJournalSave, intent.ActionType)

		intent, err = s.ExtractIntent(ctx, "I want to journal about my day", "MoodMate")
		require.NoError(t, err)
		assert.NotEqual(t, core.ActionJournalSave, intent.ActionType)
	})

	t.Run("analysis keywords only count for InsightBot", func(t *testing.T) {
		intent, err := s.ExtractIntent(ctx, "analyze my trends please", "InsightBot")
		require.NoError(t, err)
		assert.Equal(t, core.ActionDataAnalysis, intent.ActionType)

		intent, err = s.ExtractIntent(ctx, "analyze my trends please", "FlexGenie")
		require.NoError(t, err)
		assert.NotEqual(t, core.ActionDataAnalysis, intent.ActionType)
	})

	t.Run("requests map to recommendation", func(t *testing.T) {
		intent, err := s.ExtractIntent(ctx, "can you give me a meal plan", "NutriCoach")
		require.NoError(t, err)
		assert.Equal(t, core.ActionRecommendationRequest, intent.ActionType)
		assert.Contains(t, intent.Entities, "nutrition")
	})

	t.Run("small talk needs no action", func(t *testing.T) {
		intent, err := s.ExtractIntent(ctx, "hello there", "MoodMate")
		require.NoError(t, err)
		assert.Equal(t, "general_conversation", intent.Intent)
		assert.False(t, intent.NeedsAction)
		assert.Contains(t, intent.Entities, "greeting")
	})
}

func TestStaticConversationReply(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()
	uc := core.NeutralUserContext()

	t.Run("stress prompts a breathing exercise", func(t *testing.T) {
		reply, err := s.ConversationReply(ctx, "MoodMate", "I'm so stressed out", nil, uc)
		require.NoError(t, err)
		assert.Contains(t, reply, "deep breaths")
	})

	t.Run("first greeting introduces the agent", func(t *testing.T) {
		reply, err := s.ConversationReply(ctx, "FlexGenie", "hey", nil, uc)
		require.NoError(t, err)
		assert.Contains(t, reply, "FlexGenie")
	})

	t.Run("greeting mid conversation skips the intro", func(t *testing.T) {
		history := []core.ChatMessage{{Role: "user", Content: "hi"}}
		reply, err := s.ConversationReply(ctx, "NutriCoach", "hello again", history, uc)
		require.NoError(t, err)
		assert.NotContains(t, reply, "I'm NutriCoach")
	})

	t.Run("insight replies reflect the streak", func(t *testing.T) {
		uc := core.NeutralUserContext()
		uc.StreakDays = 12
		reply, err := s.ConversationReply(ctx, "InsightBot", "how is my progress", nil, uc)
		require.NoError(t, err)
		assert.Contains(t, reply, "12 day streak")
	})

	t.Run("unknown agent gets a generic reply", func(t *testing.T) {
		reply, err := s.ConversationReply(ctx, "Stranger", "hi", nil, uc)
		require.NoError(t, err)
		assert.NotEmpty(t, reply)
	})
}
