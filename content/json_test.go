package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestExtractJSON(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		obj, ok := ExtractJSON(`{"playlists": ["Deep Focus"], "quote": "keep going"}`)
		require.True(t, ok)
		assert.Equal(t, "keep going", gjson.Get(obj, "quote").String())
	})

	t.Run("markdown fenced object", func(t *testing.T) {
		raw := "```json\n{\"suggestions\": [\"drink water\"]}\n```"
		obj, ok := ExtractJSON(raw)
		require.True(t, ok)
		assert.Equal(t, "drink water", gjson.Get(obj, "suggestions.0").String())
	})

	t.Run("fence without language tag", func(t *testing.T) {
		raw := "```\n{\"intent\": \"share current mood\"}\n```"
		obj, ok := ExtractJSON(raw)
		require.True(t, ok)
		assert.Equal(t, "share current mood", gjson.Get(obj, "intent").String())
	})

	t.Run("object surrounded by prose", func(t *testing.T) {
		raw := `Sure! Here is the plan you asked for: {"meals": [{"name": "Oats"}]} Hope that helps.`
		obj, ok := ExtractJSON(raw)
		require.True(t, ok)
		assert.Equal(t, "Oats", gjson.Get(obj, "meals.0.name").String())
	})

	t.Run("no object present", func(t *testing.T) {
		_, ok := ExtractJSON("I could not produce a structured answer, sorry.")
		assert.False(t, ok)
	})

	t.Run("array is not an object", func(t *testing.T) {
		_, ok := ExtractJSON(`["a", "b"]`)
		assert.False(t, ok)
	})
}

func TestStringSlice(t *testing.T) {
	result := gjson.Parse(`["a", 1, "b", null, "c"]`)
	assert.Equal(t, []string{"a", "b", "c"}, StringSlice(result))

	assert.Nil(t, StringSlice(gjson.Parse(`"not an array"`)))
}

func TestParseIntentJSON(t *testing.T) {
	intent, err := ParseIntentJSON(`{"intent": "save a journal entry", "needsAction": true, "actionType": "journal_save", "entities": ["journal"]}`)
	require.NoError(t, err)
	assert.Equal(t, "save a journal entry", intent.Intent)
	assert.True(t, intent.NeedsAction)
	assert.Equal(t, "journal_save", intent.ActionType)

	// Missing intent falls back to general conversation.
	intent, err = ParseIntentJSON(`{"needsAction": false}`)
	require.NoError(t, err)
	assert.Equal(t, "general_conversation", intent.Intent)
}

func TestParseMusicJSONRequiresPlaylists(t *testing.T) {
	_, err := ParseMusicJSON(`{"quote": "no playlists here"}`)
	require.Error(t, err)

	mc, err := ParseMusicJSON(`{"playlists": ["Peaceful Piano"], "quote": "breathe"}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Peaceful Piano"}, mc.Playlists)
}

func TestParseNutritionJSONHydrationDefault(t *testing.T) {
	plan, err := ParseNutritionJSON(`{"meals": [{"name": "Oats"}]}`)
	require.NoError(t, err)
	assert.Equal(t, DefaultHydrationGoal, plan.HydrationGoal)
}
