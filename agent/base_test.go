package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/wellmesh/core"
	"github.com/hupe1980/wellmesh/internal/testutil"
	"github.com/hupe1980/wellmesh/memory"
	"github.com/hupe1980/wellmesh/recommendation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCapability is a minimal capability whose behavior is controlled per test.
type stubCapability struct {
	name        string
	tools       []string
	mustDo      []string
	actions     []core.AgentAction
	intent      core.UserIntent
	panicIntent bool
	panicStep   string
	memoryBlob  map[string]any

	selectedName string
	executed     []string
}

func (s *stubCapability) Name() string    { return s.name }
func (s *stubCapability) Role() string    { return "stub" }
func (s *stubCapability) Tools() []string { return s.tools }
func (s *stubCapability) MustDo() []string {
	return s.mustDo
}
func (s *stubCapability) TypeTag() string { return "stub" }

func (s *stubCapability) AnalyzeIntent(context.Context, core.Input, core.UserContext, map[string]any) core.UserIntent {
	if s.panicIntent {
		panic("intent analysis exploded")
	}
	return s.intent
}

func (s *stubCapability) Actions() []core.AgentAction { return s.actions }

func (s *stubCapability) ExecuteStep(_ context.Context, step core.ExecutionStep, _ *core.StepContext) core.StepResult {
	s.executed = append(s.executed, step.Name)
	if step.Name == s.panicStep {
		panic("step exploded")
	}
	return core.StepResult{Step: step.Name, Success: true, Data: map[string]any{"step": step.Name}}
}

func (s *stubCapability) BuildOutput(results []core.StepResult, _ *core.StepContext) map[string]any {
	if data, ok := primaryData(results).(map[string]any); ok {
		return data
	}
	return map[string]any{"message": "nothing produced"}
}

func (s *stubCapability) CollaborationTriggers([]core.StepResult, *core.StepContext) []string {
	return nil
}

func (s *stubCapability) MemoryUpdate(_ []core.StepResult, _ *core.StepContext, success bool) map[string]any {
	if !success {
		return nil
	}
	return s.memoryBlob
}

func (s *stubCapability) ErrorResponse(error, core.Input) string {
	return "the stub is having a moment"
}

// Steps records which approach was selected before expanding to the default
// pipeline.
func (s *stubCapability) Steps(selected core.Alternative, _ core.AgentPlan) []core.ExecutionStep {
	s.selectedName = selected.Action.Name
	return core.DefaultSteps()
}

func TestBaseRunHappyPath(t *testing.T) {
	capability := &stubCapability{
		name:   "Stub",
		intent: core.UserIntent{Summary: "test", Categories: []string{"mood"}, Confidence: 0.9, Urgency: core.UrgencyMedium},
		actions: []core.AgentAction{
			{Name: "act", Description: "do the thing", Categories: []string{"mood"}, BasePriority: 0.8},
		},
		memoryBlob: map[string]any{"runs": 1},
	}
	mem := memory.NewInMemoryStore()
	recs := recommendation.NewInMemoryStore()
	base := NewBase(capability, Options{Memory: mem, Recommendations: recs})

	out := base.Run(context.Background(), core.Input{}, 1)

	assert.True(t, out.Success)
	assert.Equal(t, "Stub", out.AgentName)
	assert.Equal(t, []string{"prepare", "execute_main", "finalize"}, capability.executed)
	assert.Equal(t, "act", capability.selectedName)
	assert.Equal(t, 1, out.Plan.ActionCount)
	assert.Equal(t, "low", out.Plan.RiskLevel)

	// Memory blob written.
	record, err := mem.Get(1, "Stub")
	require.NoError(t, err)
	assert.Equal(t, 1, record.Data["runs"])

	// Successful runs persist a recommendation.
	list, err := recs.ListActive(1, "Stub")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "stub", list[0].Type)
}

func TestBaseRunMustDoBeatsHigherBasePriority(t *testing.T) {
	capability := &stubCapability{
		name:   "Stub",
		mustDo: []string{"boosted"},
		intent: core.UserIntent{Summary: "test", Categories: []string{"mood"}, Confidence: 0.9},
		actions: []core.AgentAction{
			{Name: "plain", Description: "plain action", Categories: []string{"mood"}, BasePriority: 0.95},
			{Name: "boosted", Description: "must-do action", Categories: []string{"mood"}, BasePriority: 0.9},
		},
	}
	base := NewBase(capability, Options{})

	out := base.Run(context.Background(), core.Input{}, 1)

	require.True(t, out.Success)
	assert.Equal(t, "boosted", capability.selectedName, "0.9 + 0.3 must-do bonus outranks 0.95")
}

func TestBaseRunNeverErrorsOnPanic(t *testing.T) {
	capability := &stubCapability{name: "Stub", panicIntent: true}
	base := NewBase(capability, Options{})

	out := base.Run(context.Background(), core.Input{}, 1)

	assert.False(t, out.Success)
	assert.Equal(t, core.ErrorKindInternal, core.KindOf(out.Err))
	assert.Equal(t, "the stub is having a moment", out.Payload["message"])
}

func TestBaseRunStepPanicFailsRun(t *testing.T) {
	capability := &stubCapability{
		name:      "Stub",
		panicStep: core.StepExecuteMain,
		intent:    core.UserIntent{Summary: "test", Categories: []string{"mood"}, Confidence: 0.9},
		actions: []core.AgentAction{
			{Name: "act", Description: "do the thing", Categories: []string{"mood"}},
		},
	}
	recs := recommendation.NewInMemoryStore()
	base := NewBase(capability, Options{Recommendations: recs})

	out := base.Run(context.Background(), core.Input{}, 1)

	assert.False(t, out.Success)
	// The finalize step still ran after the panic.
	assert.Equal(t, []string{"prepare", "execute_main", "finalize"}, capability.executed)

	// Failed runs never persist recommendations.
	list, err := recs.ListActive(1, "Stub")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBaseRunNoActionFallback(t *testing.T) {
	capability := &stubCapability{
		name:   "Stub",
		intent: core.UserIntent{Summary: "test", Categories: []string{"unrelated"}, Confidence: 0.5},
		actions: []core.AgentAction{
			{Name: "act", Description: "do the thing", Categories: []string{"mood"}},
		},
	}
	base := NewBase(capability, Options{})

	out := base.Run(context.Background(), core.Input{}, 1)

	require.True(t, out.Success)
	assert.Equal(t, "default", capability.selectedName)
	assert.Zero(t, out.Plan.ActionCount)
}

func TestBaseRunToolFreeActionKeepsFeasibilityBonus(t *testing.T) {
	capability := &stubCapability{
		name:   "Stub",
		tools:  []string{"present"},
		intent: core.UserIntent{Summary: "test", Categories: []string{"mood"}, Confidence: 0.9},
		actions: []core.AgentAction{
			{Name: "needs_absent_tool", Description: "blocked", Categories: []string{"mood"}, BasePriority: 0.9, RequiredTools: []string{"absent"}},
			{Name: "tool_free", Description: "runs anywhere", Categories: []string{"mood"}, BasePriority: 0.5},
		},
	}
	base := NewBase(capability, Options{})

	out := base.Run(context.Background(), core.Input{}, 1)

	require.True(t, out.Success)
	// An empty tool list counts as all tools available, so the tool-free
	// action outscores the one missing a tool despite its lower priority.
	assert.Equal(t, "tool_free", capability.selectedName)
}

func TestBaseObserve(t *testing.T) {
	capability := &stubCapability{name: "Stub"}
	mem := memory.NewInMemoryStore()
	base := NewBase(capability, Options{Memory: mem})

	peer := testutil.NewOutputBuilder("Peer").Payload(map[string]any{"x": 1}).Build()
	for i := 0; i < core.MaxObservations+4; i++ {
		require.NoError(t, base.Observe(context.Background(), peer, 1))
	}

	record, err := mem.Get(1, "Stub")
	require.NoError(t, err)
	observations, ok := record.Data["observations"].([]any)
	require.True(t, ok)
	assert.Len(t, observations, core.MaxObservations)

	latest, ok := observations[len(observations)-1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Peer", latest["agent"])
	assert.Equal(t, true, latest["success"])
	assert.Equal(t, true, latest["hadRecommendations"])
	assert.NotEmpty(t, latest["observedAt"])
}

func TestBaseObserveSurvivesMemoryUpdate(t *testing.T) {
	mem := memory.NewInMemoryStore()
	m := NewMoodMate(func(o *Options) {
		o.Memory = mem
	})

	peer := testutil.NewOutputBuilder("NutriCoach").Payload(map[string]any{"plan": "light meals"}).Build()
	require.NoError(t, m.Observe(context.Background(), peer, 1))

	// A full run decodes and re-encodes the typed memory schema; the
	// observation must come through intact.
	require.True(t, m.Run(context.Background(), core.Input{core.InputKeyMood: "happy"}, 1).Success)

	record, err := mem.Get(1, "MoodMate")
	require.NoError(t, err)
	var moodMem core.MoodMemory
	require.NoError(t, core.DecodeMemoryData(record.Data, &moodMem))
	require.Len(t, moodMem.Observations, 1)
	obs := moodMem.Observations[0]
	assert.Equal(t, "NutriCoach", obs.Agent)
	assert.True(t, obs.Success)
	assert.True(t, obs.HadRecommendations)
	assert.False(t, obs.ObservedAt.IsZero())
}

func TestBaseObserveWithoutMemoryIsNoOp(t *testing.T) {
	base := NewBase(&stubCapability{name: "Stub"}, Options{})
	assert.NoError(t, base.Observe(context.Background(), core.Output{AgentName: "Peer"}, 1))
}
