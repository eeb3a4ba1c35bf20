package core

import "context"

// Input is the free-form payload handed to an agent run. Collaboration runs
// receive the triggering agent's memory snapshot plus routing fields.
type Input map[string]any

// String returns the string value stored under key, or "" when absent or of a
// different type.
func (in Input) String(key string) string {
	if in == nil {
		return ""
	}
	s, _ := in[key].(string)
	return s
}

// Int returns the int value stored under key, accepting float64 for values
// that round-tripped through JSON.
func (in Input) Int(key string) int {
	if in == nil {
		return 0
	}
	switch v := in[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Well-known input keys shared between the engine and agents.
const (
	InputKeyMood             = "mood"
	InputKeyMessage          = "userMessage"
	InputKeyIntent           = "intent"
	InputKeyTriggeringAgent  = "triggeringAgent"
	InputKeyCurrentMood      = "currentMood"
	InputKeyStressLevel      = "stressLevel"
	InputKeyTimeBudget       = "timeBudget"
)

// Output is the result summary returned by every agent run. Run never fails
// at the API level: failures are reported through Success=false and Err while
// Payload carries a user-presentable fallback.
type Output struct {
	AgentName             string
	Success               bool
	Payload               map[string]any
	CollaborationTriggers []string
	Plan                  PlanSummary
	Confidence            float64
	Memory                map[string]any
	Err                   error
}

// Agent is a capability unit turning user state into recommendations via the
// PLAN → THINK → EXECUTE cycle.
type Agent interface {
	// Name returns the unique registry name of the agent.
	Name() string

	// Role returns the human-readable role description.
	Role() string

	// Tools returns the declared tool names the agent's actions may require.
	Tools() []string

	// Run executes one full reasoning cycle. It never returns an error:
	// failures surface as Output.Success=false with a tagged Output.Err.
	Run(ctx context.Context, in Input, userID int) Output

	// Observe lets the agent passively record another agent's run outcome.
	// Callers treat failures as fire-and-forget.
	Observe(ctx context.Context, out Output, userID int) error
}
