package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
)

// Compile time check to ensure NutriCoach satisfies the core.Agent and
// Capability interfaces.
var (
	_ core.Agent = (*NutriCoach)(nil)
	_ Capability = (*NutriCoach)(nil)
)

// moodNutritionAdaptations are the dietary adjustments applied per mood.
var moodNutritionAdaptations = map[string][]string{
	"stressed": {"Include magnesium-rich foods like dark chocolate and nuts", "Avoid excessive caffeine", "Add omega-3 rich foods"},
	"tired":    {"Include iron-rich foods", "Add complex carbohydrates for sustained energy", "Include B-vitamin sources"},
	"anxious":  {"Include calming herbs like chamomile", "Avoid stimulants", "Keep blood sugar stable with regular meals"},
	"sad":      {"Include serotonin-boosting foods", "Add vitamin D sources", "Choose healthy comfort foods"},
}

var defaultNutritionAdaptations = []string{"Maintain balanced nutrition", "Eat a variety of whole foods"}

// moodNutritionTips are the per-mood recommendations attached to the insights.
var moodNutritionTips = map[string][]string{
	"stressed": {"Try chamomile tea in the evening", "Add dark leafy greens to meals", "Limit caffeine after 2 PM"},
	"tired":    {"Pair iron-rich foods with vitamin C", "Include protein at every meal", "Stay consistently hydrated"},
	"anxious":  {"Avoid processed sugar spikes", "Include probiotic foods", "Snack on magnesium-rich nuts and seeds"},
}

var defaultNutritionTips = []string{"Eat colorful fruits and vegetables", "Stay hydrated throughout the day", "Choose lean proteins"}

// NutriCoach generates mood-adapted meal plans, hydration guidance and eating
// schedules. It usually runs as a collaboration target triggered by MoodMate.
type NutriCoach struct {
	*Base
}

// NewNutriCoach creates a new NutriCoach agent.
func NewNutriCoach(optFns ...func(o *Options)) *NutriCoach {
	n := &NutriCoach{}
	n.Base = NewBase(n, applyOptions(optFns))
	return n
}

// Name implements Capability.
func (n *NutriCoach) Name() string { return "NutriCoach" }

// Role implements Capability.
func (n *NutriCoach) Role() string { return "Nutrition Intelligence & Meal Planning" }

// Tools implements Capability.
func (n *NutriCoach) Tools() []string {
	return []string{"meal_planning", "hydration_tracking", "nutrition_analysis", "dietary_restrictions", "calorie_tracking"}
}

// MustDo implements Capability.
func (n *NutriCoach) MustDo() []string {
	return []string{"assess_nutritional_needs", "generate_meal_plan", "provide_hydration_guidance"}
}

// TypeTag implements Capability.
func (n *NutriCoach) TypeTag() string { return "nutrition" }

// AnalyzeIntent implements Capability.
func (n *NutriCoach) AnalyzeIntent(_ context.Context, in core.Input, uc core.UserContext, _ map[string]any) core.UserIntent {
	mood := collaborationMood(in, uc)

	categories := []string{"nutrition", "health"}
	if mood != "" && mood != "neutral" {
		categories = append(categories, "mood_support")
	}
	if in.String(core.InputKeyTriggeringAgent) != "" {
		categories = append(categories, "collaboration")
	}

	urgency := core.UrgencyMedium
	if mood == "stressed" || mood == "tired" {
		urgency = core.UrgencyHigh
	}

	return core.UserIntent{
		Summary:    fmt.Sprintf("Provide nutrition guidance for %s state", mood),
		Categories: categories,
		Urgency:    urgency,
		Confidence: 0.85,
		Entities:   []string{mood},
		Category:   "nutrition",
	}
}

// collaborationMood resolves the mood for collaboration-triggered runs: the
// triggering agent's currentMood wins over a direct mood input, then the user
// context, then neutral.
func collaborationMood(in core.Input, uc core.UserContext) string {
	if mood := in.String(core.InputKeyCurrentMood); mood != "" {
		return mood
	}
	if mood := in.String(core.InputKeyMood); mood != "" {
		return mood
	}
	if uc.CurrentMood != "" {
		return uc.CurrentMood
	}
	return "neutral"
}

// Actions implements Capability.
func (n *NutriCoach) Actions() []core.AgentAction {
	return []core.AgentAction{
		{
			Name:          "generate_meal_plan",
			Description:   "generate a mood-adapted meal plan",
			Categories:    []string{"nutrition", "meal_planning"},
			BasePriority:  0.9,
			RequiredTools: []string{"meal_planning"},
			Benefits:      []string{"structured_eating", "mood_support", "nutritional_balance"},
			Risks:         []string{"dietary_mismatch"},
		},
		{
			Name:          "analyze_nutritional_needs",
			Description:   "assess nutritional needs from mood and history",
			Categories:    []string{"nutrition", "analysis"},
			BasePriority:  0.8,
			RequiredTools: []string{"nutrition_analysis"},
			Benefits:      []string{"personalized_guidance", "deficiency_awareness"},
			Risks:         []string{"incomplete_data"},
		},
		{
			Name:          "create_hydration_plan",
			Description:   "create a daily hydration plan",
			Categories:    []string{"hydration", "health"},
			BasePriority:  0.7,
			RequiredTools: []string{"hydration_tracking"},
			Benefits:      []string{"better_hydration", "energy_support"},
			Risks:         []string{"over_hydration"},
		},
	}
}

// ExecuteStep implements Capability.
func (n *NutriCoach) ExecuteStep(ctx context.Context, step core.ExecutionStep, sc *core.StepContext) core.StepResult {
	switch step.Name {
	case core.StepPrepare:
		return n.prepare(sc)
	case core.StepExecuteMain:
		return n.generatePlan(ctx, sc)
	case core.StepFinalize:
		return n.finalize(sc)
	}
	return core.StepResult{
		Step:    step.Name,
		Success: false,
		Err:     core.Errorf(core.ErrorKindStep, "unknown step: %s", step.Name),
	}
}

func (n *NutriCoach) prepare(sc *core.StepContext) core.StepResult {
	var mem core.NutritionMemory
	if err := core.DecodeMemoryData(sc.Memory, &mem); err != nil {
		return core.StepResult{Step: core.StepPrepare, Success: false, Err: err}
	}

	preferences := mem.Preferences
	if preferences == nil {
		preferences = map[string]any{}
	}

	return core.StepResult{
		Step:    core.StepPrepare,
		Success: true,
		Data: map[string]any{
			"mood":        collaborationMood(sc.Input, sc.UserContext),
			"preferences": preferences,
		},
	}
}

func (n *NutriCoach) generatePlan(ctx context.Context, sc *core.StepContext) core.StepResult {
	mood := collaborationMood(sc.Input, sc.UserContext)
	preferences := map[string]any{}
	if out, ok := sc.Output(core.StepPrepare); ok {
		if data, ok := out.(map[string]any); ok {
			if m, ok := data["mood"].(string); ok && m != "" {
				mood = m
			}
			if p, ok := data["preferences"].(map[string]any); ok {
				preferences = p
			}
		}
	}

	plan, err := n.Provider().NutritionPlan(ctx, mood, preferences)
	if err != nil {
		n.opts.Logger.Warn("nutrition provider failed, using fallback", "agent", n.Name(), "mood", mood, "error", err)
		plan = content.FallbackNutritionPlan(mood, preferences)
	}

	adaptations, ok := moodNutritionAdaptations[mood]
	if !ok {
		adaptations = defaultNutritionAdaptations
	}
	plan.Adaptations = append(plan.Adaptations, adaptations...)

	return core.StepResult{
		Step:    core.StepExecuteMain,
		Success: true,
		Data: map[string]any{
			"mood":          mood,
			"nutritionPlan": plan,
			"hydrationPlan": hydrationPlan(mood),
			"mealSchedule":  mealSchedule(),
			"shoppingList":  shoppingList(plan.Meals),
		},
	}
}

func (n *NutriCoach) finalize(sc *core.StepContext) core.StepResult {
	out, ok := sc.Output(core.StepExecuteMain)
	if !ok {
		return core.StepResult{
			Step:    core.StepFinalize,
			Success: false,
			Err:     core.Errorf(core.ErrorKindStep, "meal plan generation produced no data"),
		}
	}

	data, _ := out.(map[string]any)
	mood, _ := data["mood"].(string)

	payload := map[string]any{
		"confidence":          0.85,
		"nutritionalInsights": nutritionInsights(mood, data),
	}
	for k, v := range data {
		payload[k] = v
	}

	return core.StepResult{
		Step:    core.StepFinalize,
		Success: true,
		Data:    payload,
	}
}

func hydrationPlan(mood string) map[string]any {
	enhancements := []string{"lemon_water", "plain_water"}
	if mood == "stressed" {
		enhancements = []string{"herbal_teas", "electrolytes"}
	}
	return map[string]any{
		"dailyTarget":  "8-10 glasses",
		"timing":       []string{"upon_waking", "before_meals", "during_exercise", "before_bed"},
		"enhancements": enhancements,
		"tracking":     "Log each glass to stay on target",
	}
}

func mealSchedule() map[string]any {
	return map[string]any{
		"breakfast":       "7:00-9:00 AM",
		"morning_snack":   "10:30-11:00 AM",
		"lunch":           "12:30-1:30 PM",
		"afternoon_snack": "3:30-4:00 PM",
		"dinner":          "6:30-8:00 PM",
		"principles":      []string{"eat_every_3_hours", "larger_breakfast", "lighter_dinner"},
	}
}

// shoppingList collects the unique ingredients across the planned meals.
func shoppingList(meals []content.Meal) []string {
	seen := map[string]bool{}
	var list []string
	for _, meal := range meals {
		for _, ingredient := range meal.Ingredients {
			if !seen[ingredient] {
				seen[ingredient] = true
				list = append(list, ingredient)
			}
		}
	}
	return list
}

func nutritionInsights(mood string, data map[string]any) map[string]any {
	focus := "balanced nutrition"
	if plan, ok := data["nutritionPlan"].(content.NutritionPlan); ok && plan.PrimaryFocus != "" {
		focus = plan.PrimaryFocus
	}

	tips, ok := moodNutritionTips[mood]
	if !ok {
		tips = defaultNutritionTips
	}

	return map[string]any{
		"keyInsights": []string{
			fmt.Sprintf("Nutrition plan optimized for %s mood", mood),
			fmt.Sprintf("Focus on %s", focus),
			"Confidence level: 85%",
		},
		"recommendations": tips,
	}
}

// BuildOutput implements Capability.
func (n *NutriCoach) BuildOutput(results []core.StepResult, _ *core.StepContext) map[string]any {
	data := primaryData(results)
	if data == nil {
		return map[string]any{
			"error":    "Failed to generate nutrition recommendations",
			"fallback": "Please try again or consult with a nutritionist",
		}
	}
	payload, ok := data.(map[string]any)
	if !ok {
		payload = map[string]any{"nutritionPlan": data}
	}
	return payload
}

// CollaborationTriggers implements Capability. NutriCoach is a collaboration
// target and never re-triggers peers.
func (n *NutriCoach) CollaborationTriggers(_ []core.StepResult, _ *core.StepContext) []string {
	return nil
}

// MemoryUpdate implements Capability.
func (n *NutriCoach) MemoryUpdate(results []core.StepResult, sc *core.StepContext, success bool) map[string]any {
	var mem core.NutritionMemory
	if err := core.DecodeMemoryData(sc.Memory, &mem); err != nil {
		n.opts.Logger.Warn("nutrition memory decode failed", "agent", n.Name(), "error", err)
		return nil
	}

	if data, ok := primaryData(results).(map[string]any); ok {
		if plan, ok := data["nutritionPlan"].(content.NutritionPlan); ok && plan.PrimaryFocus != "" {
			mem.LastPlanFocus = plan.PrimaryFocus
		}
	}
	if success {
		mem.SuccessfulRuns++
	}

	data, err := core.EncodeMemoryData(mem)
	if err != nil {
		n.opts.Logger.Warn("nutrition memory encode failed", "agent", n.Name(), "error", err)
		return nil
	}
	return data
}

// ErrorResponse implements Capability.
func (n *NutriCoach) ErrorResponse(err error, _ core.Input) string {
	switch core.KindOf(err) {
	case core.ErrorKindProvider:
		return "I'm having trouble accessing nutrition data right now. Try asking about general healthy eating habits, or check back in a few minutes."
	case core.ErrorKindUserProfile:
		return "I need more information about your dietary preferences to give you personalized advice. Could you tell me about any restrictions or goals you have?"
	}
	return "I encountered an issue creating your nutrition plan. Let me offer some general healthy eating tips instead."
}
