package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/wellmesh/core"
	"github.com/hupe1980/wellmesh/internal/testutil"
	"github.com/hupe1980/wellmesh/memory"
	"github.com/hupe1980/wellmesh/wellness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAnalysisData(t *testing.T, store core.WellnessStore) int {
	t.Helper()

	return testutil.NewWellnessBuilder(store).User("sarah").
		Moods("sad", "stressed", "neutral", "calm", "focused", "happy", "happy", "excited", "happy").
		Metrics(
			core.MetricsSample{EnergyLevel: 5, StressLevel: 6},
			core.MetricsSample{EnergyLevel: 6, StressLevel: 5},
			core.MetricsSample{EnergyLevel: 7, StressLevel: 4},
			core.MetricsSample{EnergyLevel: 5, StressLevel: 6},
			core.MetricsSample{EnergyLevel: 6, StressLevel: 5},
		).
		Journal("a long reflection about balance").
		Build()
}

func TestInsightBotAnalysis(t *testing.T) {
	store := wellness.NewInMemoryStore()
	userID := seedAnalysisData(t, store)

	bot := NewInsightBot(func(o *Options) {
		o.Wellness = store
	})

	out := bot.Run(context.Background(), core.Input{}, userID)

	require.True(t, out.Success)
	assert.Equal(t, "InsightBot", out.AgentName)
	assert.Empty(t, out.CollaborationTriggers, "analysis ends every collaboration chain")

	trends, ok := out.Payload["trends"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, trends, "insufficient_data")
	week, ok := trends["week"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, []string{"improving", "declining", "stable"}, week["moodTrend"])
	assert.Equal(t, "happy", week["dominantMood"])

	correlations, ok := out.Payload["correlations"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, correlations, "moodEnergy")
	assert.Contains(t, correlations, "moodStress")

	quality, ok := out.Payload["dataQuality"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 15, quality["dataPoints"])

	assert.NotEmpty(t, out.Payload["suggestions"])
	assert.NotNil(t, out.Payload["predictions"])
}

func TestInsightBotSparseData(t *testing.T) {
	store := wellness.NewInMemoryStore()
	user, err := store.CreateUser("sarah")
	require.NoError(t, err)
	_, err = store.CreateMoodEntry(user.ID, "happy")
	require.NoError(t, err)

	bot := NewInsightBot(func(o *Options) {
		o.Wellness = store
	})

	out := bot.Run(context.Background(), core.Input{}, user.ID)

	require.True(t, out.Success, "sparse data degrades the analysis, it does not fail it")
	trends, ok := out.Payload["trends"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, trends["insufficient_data"])
}

func TestInsightBotCrossAgentSynthesis(t *testing.T) {
	mem := memory.NewInMemoryStore()
	moodMate := NewMoodMate(func(o *Options) {
		o.Memory = mem
	})
	require.True(t, moodMate.Run(context.Background(), core.Input{core.InputKeyMood: "happy"}, 1).Success)

	bot := NewInsightBot(func(o *Options) {
		o.Memory = mem
	})

	out := bot.Run(context.Background(), core.Input{}, 1)

	require.True(t, out.Success)
	crossAgent, ok := out.Payload["crossAgentInsights"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, crossAgent["agentsWithData"])

	activity, ok := crossAgent["agentActivity"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, activity, "MoodMate")
}

func TestInsightBotRecordsAnalysisInMemory(t *testing.T) {
	store := wellness.NewInMemoryStore()
	userID := seedAnalysisData(t, store)

	bot := NewInsightBot(func(o *Options) {
		o.Wellness = store
	})

	out := bot.Run(context.Background(), core.Input{}, userID)
	require.True(t, out.Success)

	var mem core.InsightMemory
	require.NoError(t, core.DecodeMemoryData(out.Memory, &mem))
	assert.False(t, mem.LastAnalysisAt.IsZero())
	assert.Positive(t, mem.DataQualityScore)
	assert.Equal(t, 1, mem.SuccessfulRuns)
}

func TestPearson(t *testing.T) {
	assert.InDelta(t, 1.0, pearson([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}), 1e-9)
	assert.InDelta(t, -1.0, pearson([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2}), 1e-9)
	assert.Zero(t, pearson([]float64{1, 1, 1}, []float64{2, 5, 9}), "constant series have no defined correlation")
	assert.Zero(t, pearson([]float64{1, 2}, []float64{1}))
}

func TestAverage(t *testing.T) {
	assert.Zero(t, average(nil))
	assert.InDelta(t, 5.0, average([]float64{4, 5, 6}), 1e-9)
}

func TestSeriesTrend(t *testing.T) {
	// Series are newest-first.
	assert.Equal(t, "improving", seriesTrend([]float64{8, 8, 8, 5, 3, 3}))
	assert.Equal(t, "declining", seriesTrend([]float64{2, 2, 2, 6, 7, 7}))
	assert.Equal(t, "stable", seriesTrend([]float64{5, 5, 5, 5, 5, 5}))
	assert.Equal(t, "insufficient_data", seriesTrend([]float64{5, 5}))
}

func TestEmotionalVolatility(t *testing.T) {
	assert.Zero(t, emotionalVolatility([]float64{5}))
	assert.InDelta(t, 0.0, emotionalVolatility([]float64{5, 5, 5}), 1e-9)
	assert.InDelta(t, 0.4, emotionalVolatility([]float64{1, 5, 9}), 1e-9)
}

func TestAssessDataQuality(t *testing.T) {
	empty := assessDataQuality(wellnessDataset{})
	assert.Equal(t, 0, empty["score"])
	assert.Equal(t, "poor", empty["completeness"])

	moods := make([]core.MoodEntry, 25)
	rich := assessDataQuality(wellnessDataset{Moods: moods})
	assert.Equal(t, "good", rich["completeness"])
}
