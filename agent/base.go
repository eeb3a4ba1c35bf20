package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
	"github.com/hupe1980/wellmesh/logging"
)

// Capability supplies the domain-specific pieces of the reasoning cycle. The
// Base engine owns the generic PLAN/THINK/EXECUTE mechanics; a capability
// contributes intent analysis, its action catalog, step handlers and output
// assembly.
type Capability interface {
	// Name returns the unique registry name of the agent.
	Name() string

	// Role returns the human-readable role description.
	Role() string

	// Tools returns the tool names available to this capability. Actions
	// whose required tools are all present gain feasibility.
	Tools() []string

	// MustDo returns the action names that always receive a priority boost.
	MustDo() []string

	// TypeTag is the recommendation type recorded for persisted output.
	TypeTag() string

	// AnalyzeIntent interprets the raw input against user context and the
	// agent's memory blob.
	AnalyzeIntent(ctx context.Context, in core.Input, uc core.UserContext, memory map[string]any) core.UserIntent

	// Actions returns the static action catalog filtered and ranked during
	// PLAN.
	Actions() []core.AgentAction

	// ExecuteStep runs one named execution step against the step context.
	ExecuteStep(ctx context.Context, step core.ExecutionStep, sc *core.StepContext) core.StepResult

	// BuildOutput assembles the final payload from the step results,
	// preferring finalize then execute_main data.
	BuildOutput(results []core.StepResult, sc *core.StepContext) map[string]any

	// CollaborationTriggers names peer agents that should run next.
	CollaborationTriggers(results []core.StepResult, sc *core.StepContext) []string

	// MemoryUpdate returns the full replacement memory blob, or nil to skip
	// the memory write.
	MemoryUpdate(results []core.StepResult, sc *core.StepContext, success bool) map[string]any

	// ErrorResponse renders the user-facing fallback message for a failed
	// run.
	ErrorResponse(err error, in core.Input) string
}

// StepPlanner is implemented by capabilities that replace the default
// prepare/execute_main/finalize pipeline with their own step list.
type StepPlanner interface {
	Steps(selected core.Alternative, plan core.AgentPlan) []core.ExecutionStep
}

// Options configure a capability agent's dependencies. Every field has a safe
// default so zero-config construction works in tests and examples.
type Options struct {
	Memory          core.MemoryStore
	Recommendations core.RecommendationStore
	Wellness        core.WellnessStore
	UserContext     core.UserContextProvider
	Provider        content.Provider
	Logger          logging.Logger
}

func applyOptions(optFns []func(o *Options)) Options {
	opts := Options{
		Provider: content.NewStatic(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return opts
}

// Base drives the PLAN -> THINK -> EXECUTE cycle for one capability. It
// implements core.Agent; Run never returns an error.
type Base struct {
	capability Capability
	opts       Options
}

// NewBase wraps a capability with the shared reasoning engine.
func NewBase(capability Capability, opts Options) *Base {
	if opts.Provider == nil {
		opts.Provider = content.NewStatic()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Base{capability: capability, opts: opts}
}

// Name implements core.Agent.
func (b *Base) Name() string { return b.capability.Name() }

// Role implements core.Agent.
func (b *Base) Role() string { return b.capability.Role() }

// Tools implements core.Agent.
func (b *Base) Tools() []string { return b.capability.Tools() }

// Run implements core.Agent. The method never returns an error: panics and
// internal failures are converted into an unsuccessful Output with a
// capability-specific fallback message.
func (b *Base) Run(ctx context.Context, in core.Input, userID int) (out core.Output) {
	name := b.capability.Name()

	defer func() {
		if r := recover(); r != nil {
			err := core.Errorf(core.ErrorKindInternal, "agent %s panicked: %v", name, r)
			b.opts.Logger.Error("agent run panicked", "agent", name, "panic", r)
			out = core.Output{
				AgentName:             name,
				Success:               false,
				Payload:               map[string]any{"message": b.capability.ErrorResponse(err, in)},
				CollaborationTriggers: nil,
				Err:                   err,
			}
		}
	}()

	uc := b.userContext(ctx, userID)
	memory := b.loadMemory(userID)

	// PLAN
	plan := b.plan(ctx, in, uc, memory)
	b.opts.Logger.Debug("plan complete", "agent", name, "intent", plan.Intent.Summary, "actions", len(plan.Actions), "risk", plan.Risk.Overall.String())

	// THINK
	thought := b.think(plan)
	b.opts.Logger.Debug("approach selected", "agent", name, "approach", thought.Selected.Name, "confidence", thought.Confidence)

	// EXECUTE
	sc := core.NewStepContext(userID, in, plan, memory, uc)
	results, sc := b.execute(ctx, thought.Selected.Steps, sc)
	success := allSucceeded(results)

	payload := b.capability.BuildOutput(results, sc)
	triggers := b.capability.CollaborationTriggers(results, sc)

	updated := b.capability.MemoryUpdate(results, sc, success)
	if updated != nil && b.opts.Memory != nil {
		if _, err := b.opts.Memory.Put(userID, name, updated); err != nil {
			b.opts.Logger.Warn("memory update failed", "agent", name, "user_id", userID, "error", err)
		}
	}

	if success && payload != nil && b.opts.Recommendations != nil {
		if _, err := b.opts.Recommendations.Create(userID, name, b.capability.TypeTag(), payload); err != nil {
			b.opts.Logger.Warn("recommendation persist failed", "agent", name, "user_id", userID, "error", err)
		}
	}

	b.opts.Logger.Info("agent run complete", "agent", name, "user_id", userID, "success", success, "triggers", len(triggers))

	return core.Output{
		AgentName:             name,
		Success:               success,
		Payload:               payload,
		CollaborationTriggers: triggers,
		Plan:                  plan.Summary(),
		Confidence:            thought.Confidence,
		Memory:                updated,
	}
}

// Observe implements core.Agent by appending a bounded rolling observation of
// another agent's run into this agent's memory.
func (b *Base) Observe(_ context.Context, out core.Output, userID int) error {
	if b.opts.Memory == nil {
		return nil
	}

	name := b.capability.Name()
	memory := b.loadMemory(userID)

	var log struct {
		Observations []core.Observation `json:"observations"`
	}
	if err := core.DecodeMemoryData(memory, &log); err != nil {
		b.opts.Logger.Warn("observation log unreadable, starting fresh", "agent", name, "user_id", userID, "error", err)
	}

	log.Observations = core.AppendObservation(log.Observations, core.Observation{
		Agent:                  out.AgentName,
		Success:                out.Success,
		HadRecommendations:     out.Payload != nil,
		TriggeredCollaboration: len(out.CollaborationTriggers) > 0,
		ObservedAt:             time.Now(),
	})

	encoded, err := core.EncodeMemoryData(log)
	if err != nil {
		return err
	}
	memory["observations"] = encoded["observations"]

	if _, err := b.opts.Memory.Put(userID, name, memory); err != nil {
		return core.NewError(core.ErrorKindStorage, err)
	}
	return nil
}

// Provider exposes the content provider for capability step handlers.
func (b *Base) Provider() content.Provider { return b.opts.Provider }

func (b *Base) userContext(ctx context.Context, userID int) core.UserContext {
	if b.opts.UserContext == nil {
		return core.NeutralUserContext()
	}
	return b.opts.UserContext.UserContext(ctx, userID)
}

func (b *Base) loadMemory(userID int) map[string]any {
	if b.opts.Memory == nil {
		return map[string]any{}
	}
	record, err := b.opts.Memory.Get(userID, b.capability.Name())
	if err != nil || record.Data == nil {
		return map[string]any{}
	}
	return record.Data
}

// plan runs the PLAN phase: intent analysis, context analysis, action ranking
// and risk assessment.
func (b *Base) plan(ctx context.Context, in core.Input, uc core.UserContext, memory map[string]any) core.AgentPlan {
	intent := b.capability.AnalyzeIntent(ctx, in, uc, memory)
	analysis := analyzeContext(uc, memory)
	actions := b.prioritizeActions(b.capability.Actions(), intent)

	return core.AgentPlan{
		Intent:          intent,
		Context:         analysis,
		Actions:         actions,
		ExpectedOutcome: predictOutcome(intent, actions),
		Risk:            assessRisks(intent, analysis),
	}
}

func analyzeContext(uc core.UserContext, memory map[string]any) core.ContextAnalysis {
	mood := uc.CurrentMood
	if mood == "" {
		mood = "neutral"
	}

	var riskFactors []string
	switch mood {
	case "depressed", "suicidal", "hopeless":
		riskFactors = append(riskFactors, "mental_health_concern")
	}

	status := "stable"
	if len(riskFactors) > 0 {
		status = "concerning"
	}

	var recent []string
	if raw, ok := memory["recentActivity"].([]any); ok {
		for _, item := range raw {
			if s, ok := item.(string); ok {
				recent = append(recent, s)
			}
		}
	}

	return core.ContextAnalysis{
		CurrentMood:    mood,
		StreakDays:     uc.StreakDays,
		RecentActivity: recent,
		RiskFactors:    riskFactors,
		HealthStatus:   status,
	}
}

// prioritizeActions filters the catalog by category intersection and ranks by
// priority = basePriority + 0.3 for must-do actions + 0.1 per category match.
// The sort is stable so catalog order breaks ties.
func (b *Base) prioritizeActions(actions []core.AgentAction, intent core.UserIntent) []core.AgentAction {
	mustDo := map[string]bool{}
	for _, name := range b.capability.MustDo() {
		mustDo[name] = true
	}

	var relevant []core.AgentAction
	for _, action := range actions {
		if action.MatchingCategories(intent.Categories) > 0 {
			relevant = append(relevant, action)
		}
	}

	priority := func(a core.AgentAction) float64 {
		p := a.BasePriority
		if p == 0 {
			p = 0.5
		}
		if mustDo[a.Name] {
			p += 0.3
		}
		p += 0.1 * float64(a.MatchingCategories(intent.Categories))
		return p
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return priority(relevant[i]) > priority(relevant[j])
	})
	return relevant
}

func predictOutcome(intent core.UserIntent, actions []core.AgentAction) string {
	if len(actions) == 0 {
		return "No suitable actions identified"
	}
	return fmt.Sprintf("Expected to %s with %.0f%% confidence", actions[0].Description, intent.Confidence*100)
}

func assessRisks(intent core.UserIntent, analysis core.ContextAnalysis) core.RiskAssessment {
	var flags []core.RiskFlag

	if intent.Category == "health" && analysis.HealthStatus == "concerning" {
		flags = append(flags, core.RiskFlag{Level: core.RiskHigh, Reason: "Health concern detected"})
	}
	if intent.Urgency == core.UrgencyHigh && intent.Confidence < 0.7 {
		flags = append(flags, core.RiskFlag{Level: core.RiskMedium, Reason: "High urgency with low confidence"})
	}

	overall := core.RiskLow
	for _, flag := range flags {
		if flag.Level > overall {
			overall = flag.Level
		}
	}
	return core.RiskAssessment{Flags: flags, Overall: overall}
}

// think runs the THINK phase: reasoning narrative, alternative scoring,
// approach selection, confidence and safeguards.
func (b *Base) think(plan core.AgentPlan) core.AgentThought {
	reasoning := strings.Join([]string{
		fmt.Sprintf("User intent: %s", plan.Intent.Summary),
		fmt.Sprintf("Context: %s mood, %s health status", plan.Context.CurrentMood, plan.Context.HealthStatus),
		fmt.Sprintf("Available actions: %d options identified", len(plan.Actions)),
		fmt.Sprintf("Risk level: %d/3", int(plan.Risk.Overall)),
	}, ". ")

	alternatives := b.considerAlternatives(plan)
	selected := b.selectApproach(alternatives, plan)
	confidence := calculateConfidence(selected.SuccessProbability, plan)

	return core.AgentThought{
		Reasoning:    reasoning,
		Alternatives: alternatives,
		Selected:     selected,
		Confidence:   confidence,
		Safeguards:   identifySafeguards(selected, plan.Risk),
	}
}

// considerAlternatives scores up to three top actions by feasibility:
// 0.8 base, -0.2 at high overall risk, +0.1 when every required tool is
// available, clamped to [0.1, 1.0].
func (b *Base) considerAlternatives(plan core.AgentPlan) []core.Alternative {
	tools := map[string]bool{}
	for _, t := range b.capability.Tools() {
		tools[t] = true
	}

	limit := len(plan.Actions)
	if limit > 3 {
		limit = 3
	}

	alternatives := make([]core.Alternative, 0, limit)
	for _, action := range plan.Actions[:limit] {
		feasibility := 0.8
		if plan.Risk.Overall >= core.RiskHigh {
			feasibility -= 0.2
		}
		allTools := true
		for _, t := range action.RequiredTools {
			if !tools[t] {
				allTools = false
				break
			}
		}
		if allTools {
			feasibility += 0.1
		}
		alternatives = append(alternatives, core.Alternative{Action: action, Feasibility: clamp(feasibility, 0.1, 1.0)})
	}
	return alternatives
}

// selectApproach picks the highest-feasibility alternative (first wins ties)
// and expands it into execution steps.
func (b *Base) selectApproach(alternatives []core.Alternative, plan core.AgentPlan) core.SelectedApproach {
	if len(alternatives) == 0 {
		fallback := core.Alternative{
			Action:      core.AgentAction{Name: "default", Description: "Provide general wellness support"},
			Feasibility: 0.5,
		}
		return core.SelectedApproach{
			Name:               fallback.Action.Name,
			Description:        fallback.Action.Description,
			Steps:              b.stepsFor(fallback, plan),
			EstimatedDuration:  "5s",
			SuccessProbability: fallback.Feasibility,
		}
	}

	best := alternatives[0]
	for _, alt := range alternatives[1:] {
		if alt.Feasibility > best.Feasibility {
			best = alt
		}
	}

	return core.SelectedApproach{
		Name:               best.Action.Name,
		Description:        best.Action.Description,
		Steps:              b.stepsFor(best, plan),
		EstimatedDuration:  "5s",
		SuccessProbability: best.Feasibility,
	}
}

func (b *Base) stepsFor(selected core.Alternative, plan core.AgentPlan) []core.ExecutionStep {
	if planner, ok := b.capability.(StepPlanner); ok {
		return planner.Steps(selected, plan)
	}
	return core.DefaultSteps()
}

// calculateConfidence blends approach success probability with intent
// confidence minus a risk penalty, clamped to [0.1, 1.0].
func calculateConfidence(successProbability float64, plan core.AgentPlan) float64 {
	penalty := float64(plan.Risk.Overall) * 0.1
	return clamp((successProbability+plan.Intent.Confidence)/2-penalty, 0.1, 1.0)
}

func identifySafeguards(approach core.SelectedApproach, risk core.RiskAssessment) []string {
	var safeguards []string
	if risk.Overall >= core.RiskMedium {
		safeguards = append(safeguards,
			"Validate user input before proceeding",
			"Monitor execution for unexpected results")
	}
	if approach.SuccessProbability < 0.7 {
		safeguards = append(safeguards, "Provide alternative options if primary approach fails")
	}
	return safeguards
}

// execute runs the steps sequentially, threading the step context. Panics and
// errors inside a step become failed StepResults without aborting siblings.
func (b *Base) execute(ctx context.Context, steps []core.ExecutionStep, sc *core.StepContext) ([]core.StepResult, *core.StepContext) {
	results := make([]core.StepResult, 0, len(steps))
	for _, step := range steps {
		result := b.runStep(ctx, step, sc)
		results = append(results, result)
		if result.Success && step.ExpectedOutput != "" {
			sc = sc.WithOutput(step.ExpectedOutput, result.Data)
		}
		if !result.Success {
			b.opts.Logger.Warn("step failed", "agent", b.capability.Name(), "step", step.Name, "error", result.Err)
		}
	}
	return results, sc
}

func (b *Base) runStep(ctx context.Context, step core.ExecutionStep, sc *core.StepContext) (result core.StepResult) {
	defer func() {
		if r := recover(); r != nil {
			result = core.StepResult{
				Step:    step.Name,
				Success: false,
				Err:     core.Errorf(core.ErrorKindStep, "step %s panicked: %v", step.Name, r),
			}
		}
	}()
	return b.capability.ExecuteStep(ctx, step, sc)
}

func allSucceeded(results []core.StepResult) bool {
	for _, r := range results {
		if !r.Success {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stepData returns the data recorded by the named step, nil when absent.
func stepData(results []core.StepResult, name string) any {
	for _, r := range results {
		if r.Step == name && r.Success {
			return r.Data
		}
	}
	return nil
}

// primaryData prefers the finalize step's data, then execute_main, then nil.
func primaryData(results []core.StepResult) any {
	if data := stepData(results, core.StepFinalize); data != nil {
		return data
	}
	return stepData(results, core.StepExecuteMain)
}
