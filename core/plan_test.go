package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingCategories(t *testing.T) {
	action := AgentAction{Categories: []string{"mood", "music", "analysis"}}

	assert.Equal(t, 2, action.MatchingCategories([]string{"mood", "analysis", "fitness"}))
	assert.Equal(t, 0, action.MatchingCategories([]string{"nutrition"}))
	assert.Equal(t, 0, action.MatchingCategories(nil))
}

func TestRiskLevelString(t *testing.T) {
	assert.Equal(t, "low", RiskLow.String())
	assert.Equal(t, "medium", RiskMedium.String())
	assert.Equal(t, "high", RiskHigh.String())
}

func TestPlanSummary(t *testing.T) {
	plan := AgentPlan{
		Intent:          UserIntent{Summary: "track mood"},
		Actions:         []AgentAction{{Name: "a"}, {Name: "b"}},
		ExpectedOutcome: "better mood",
		Risk:            RiskAssessment{Overall: RiskMedium},
	}

	summary := plan.Summary()
	assert.Equal(t, "track mood", summary.IntentSummary)
	assert.Equal(t, 2, summary.ActionCount)
	assert.Equal(t, "medium", summary.RiskLevel)
	assert.Equal(t, "better mood", summary.ExpectedOutcome)
}

func TestStepContextWithOutputIsImmutable(t *testing.T) {
	sc := NewStepContext(1, Input{}, AgentPlan{}, map[string]any{}, NeutralUserContext())

	derived := sc.WithOutput("prepare", map[string]any{"mood": "calm"})

	_, ok := sc.Output("prepare")
	assert.False(t, ok, "parent context must not see later writes")

	v, ok := derived.Output("prepare")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"mood": "calm"}, v)

	// A second derivation does not leak back into the first.
	derived2 := derived.WithOutput("execute_main", 42)
	_, ok = derived.Output("execute_main")
	assert.False(t, ok)
	_, ok = derived2.Output("prepare")
	assert.True(t, ok)
}

func TestDefaultSteps(t *testing.T) {
	steps := DefaultSteps()
	require.Len(t, steps, 3)
	assert.Equal(t, StepPrepare, steps[0].Name)
	assert.Equal(t, StepExecuteMain, steps[1].Name)
	assert.Equal(t, StepFinalize, steps[2].Name)
	assert.Equal(t, []string{StepExecuteMain}, steps[2].RequiredData)
}

func TestInputAccessors(t *testing.T) {
	in := Input{"mood": "happy", "stressLevel": float64(7), "timeBudget": 20}

	assert.Equal(t, "happy", in.String("mood"))
	assert.Equal(t, "", in.String("missing"))
	assert.Equal(t, 7, in.Int("stressLevel"), "float64 values round-tripped through JSON are accepted")
	assert.Equal(t, 20, in.Int("timeBudget"))
	assert.Equal(t, 0, in.Int("missing"))

	var nilInput Input
	assert.Equal(t, "", nilInput.String("mood"))
	assert.Equal(t, 0, nilInput.Int("mood"))
}
