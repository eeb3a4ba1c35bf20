package core

// AgentAction is an immutable catalog entry declared statically per agent.
// Actions are filtered and ranked during the PLAN phase; they are never
// created per request.
type AgentAction struct {
	Name          string
	Description   string
	Categories    []string
	BasePriority  float64
	RequiredTools []string
	Benefits      []string
	Risks         []string
}

// MatchingCategories counts how many of the action's categories appear in the
// given category set.
func (a AgentAction) MatchingCategories(categories []string) int {
	n := 0
	for _, c := range a.Categories {
		for _, want := range categories {
			if c == want {
				n++
				break
			}
		}
	}
	return n
}

// ContextAnalysis summarizes the user's situation derived from user context
// plus the agent's own memory during the PLAN phase.
type ContextAnalysis struct {
	CurrentMood    string
	StreakDays     int
	RecentActivity []string
	RiskFactors    []string
	HealthStatus   string // "stable" or "concerning"
}

// RiskLevel grades run risk. Severity ordering: low < medium < high.
type RiskLevel int

const (
	// RiskLow is the baseline risk level.
	RiskLow RiskLevel = 1
	// RiskMedium marks elevated uncertainty (high urgency, low confidence).
	RiskMedium RiskLevel = 2
	// RiskHigh marks health-related intents against a concerning context.
	RiskHigh RiskLevel = 3
)

// String returns the human-readable risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskHigh:
		return "high"
	case RiskMedium:
		return "medium"
	default:
		return "low"
	}
}

// RiskFlag is a single risk finding raised during plan assessment.
type RiskFlag struct {
	Level  RiskLevel
	Reason string
}

// RiskAssessment aggregates risk flags; Overall is the max severity across
// flags, RiskLow when no flag was raised.
type RiskAssessment struct {
	Flags   []RiskFlag
	Overall RiskLevel
}

// AgentPlan is the ephemeral output of the PLAN phase. Its lifetime is one
// run() invocation.
type AgentPlan struct {
	Intent          UserIntent
	Context         ContextAnalysis
	Actions         []AgentAction // sorted by descending priority
	ExpectedOutcome string
	Risk            RiskAssessment
}

// PlanSummary is the condensed plan view carried on an agent's output.
type PlanSummary struct {
	IntentSummary   string
	ActionCount     int
	RiskLevel       string
	ExpectedOutcome string
}

// Summary condenses the plan for inclusion in run results.
func (p AgentPlan) Summary() PlanSummary {
	return PlanSummary{
		IntentSummary:   p.Intent.Summary,
		ActionCount:     len(p.Actions),
		RiskLevel:       p.Risk.Overall.String(),
		ExpectedOutcome: p.ExpectedOutcome,
	}
}
