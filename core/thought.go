package core

// Alternative is one candidate approach considered during the THINK phase,
// scored by feasibility.
type Alternative struct {
	Action      AgentAction
	Feasibility float64
}

// ExecutionStep is one named unit of the EXECUTE phase. RequiredData lists the
// step-context output keys the step reads; ExpectedOutput names the key it
// writes.
type ExecutionStep struct {
	Name           string
	Description    string
	RequiredData   []string
	ExpectedOutput string
}

// Default step names shared by all capabilities unless a capability overrides
// step generation.
const (
	StepPrepare     = "prepare"
	StepExecuteMain = "execute_main"
	StepFinalize    = "finalize"
)

// DefaultSteps returns the fixed three-step pipeline used when a capability
// does not supply custom steps.
func DefaultSteps() []ExecutionStep {
	return []ExecutionStep{
		{Name: StepPrepare, Description: "Gather context and validate inputs", ExpectedOutput: StepPrepare},
		{Name: StepExecuteMain, Description: "Perform the primary capability action", RequiredData: []string{StepPrepare}, ExpectedOutput: StepExecuteMain},
		{Name: StepFinalize, Description: "Persist results and assemble output", RequiredData: []string{StepExecuteMain}, ExpectedOutput: StepFinalize},
	}
}

// SelectedApproach is the alternative chosen during THINK, expanded with its
// execution steps.
type SelectedApproach struct {
	Name               string
	Description        string
	Steps              []ExecutionStep
	EstimatedDuration  string
	SuccessProbability float64
}

// AgentThought is the ephemeral output of the THINK phase.
type AgentThought struct {
	Reasoning    string
	Alternatives []Alternative
	Selected     SelectedApproach
	Confidence   float64
	Safeguards   []string
}

// StepResult records the outcome of a single execution step. A step is
// considered successful unless it explicitly reports Success=false.
type StepResult struct {
	Step    string
	Success bool
	Data    any
	Err     error
}

// StepContext is the immutable accumulator threaded through the EXECUTE
// pipeline. Each step reads declared upstream outputs and records its own
// under its ExpectedOutput key; WithOutput returns a derived context so
// completed steps never observe later writes.
type StepContext struct {
	UserID      int
	Input       Input
	Plan        AgentPlan
	Memory      map[string]any
	UserContext UserContext

	outputs map[string]any
}

// NewStepContext creates the initial step context for a run.
func NewStepContext(userID int, in Input, plan AgentPlan, memory map[string]any, uc UserContext) *StepContext {
	return &StepContext{
		UserID:      userID,
		Input:       in,
		Plan:        plan,
		Memory:      memory,
		UserContext: uc,
		outputs:     map[string]any{},
	}
}

// Output returns the recorded output of an upstream step.
func (sc *StepContext) Output(key string) (any, bool) {
	v, ok := sc.outputs[key]
	return v, ok
}

// WithOutput returns a copy of the context with the given step output added.
func (sc *StepContext) WithOutput(key string, value any) *StepContext {
	next := *sc
	next.outputs = make(map[string]any, len(sc.outputs)+1)
	for k, v := range sc.outputs {
		next.outputs[k] = v
	}
	next.outputs[key] = value
	return &next
}
