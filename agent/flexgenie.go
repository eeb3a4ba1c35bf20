package agent

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
)

// Compile time check to ensure FlexGenie satisfies the core.Agent and
// Capability interfaces.
var (
	_ core.Agent = (*FlexGenie)(nil)
	_ Capability = (*FlexGenie)(nil)
)

// moodEnergy estimates baseline energy (1-10) from the current mood.
var moodEnergy = map[string]int{
	"excited":  9,
	"happy":    8,
	"focused":  7,
	"neutral":  6,
	"anxious":  5,
	"stressed": 4,
	"sad":      4,
	"tired":    3,
}

const defaultEnergyLevel = 6

// moodIntensityModifiers adjust workout intensity away from raw energy.
var moodIntensityModifiers = map[string]int{
	"stressed": -2,
	"tired":    -3,
	"anxious":  -1,
	"sad":      -1,
	"excited":  1,
}

// moodFitnessTips are the per-mood recommendation lists attached to the plan.
var moodFitnessTips = map[string][]string{
	"stressed": {"Try yoga or gentle stretching to release tension", "A short walk can help clear your mind", "Focus on slow breathing during movement"},
	"tired":    {"Keep sessions short and gentle today", "Light movement can restore energy better than rest alone", "Hydrate before and after exercising"},
	"excited":  {"Channel that energy into a high-intensity session", "Warm up properly before pushing hard", "Cool down to bring your heart rate back gradually"},
}

var defaultFitnessTips = []string{"Aim for consistency over intensity", "Any amount of movement counts", "Listen to your body and rest when needed"}

// defaultWorkoutDuration is the time budget in minutes when the input does not
// carry one.
const defaultWorkoutDuration = 20

// FlexGenie builds energy-adapted workout plans with curated video
// recommendations and recovery guidance.
type FlexGenie struct {
	*Base
}

// NewFlexGenie creates a new FlexGenie agent.
func NewFlexGenie(optFns ...func(o *Options)) *FlexGenie {
	f := &FlexGenie{}
	f.Base = NewBase(f, applyOptions(optFns))
	return f
}

// Name implements Capability.
func (f *FlexGenie) Name() string { return "FlexGenie" }

// Role implements Capability.
func (f *FlexGenie) Role() string { return "Fitness Intelligence & Adaptive Workouts" }

// Tools implements Capability.
func (f *FlexGenie) Tools() []string {
	return []string{"workout_planning", "energy_adaptation", "video_recommendations", "fitness_tracking", "recovery_planning"}
}

// MustDo implements Capability.
func (f *FlexGenie) MustDo() []string {
	return []string{"assess_fitness_level", "generate_workout_plan", "provide_recovery_guidance", "track_progress"}
}

// TypeTag implements Capability.
func (f *FlexGenie) TypeTag() string { return "fitness" }

// AnalyzeIntent implements Capability.
func (f *FlexGenie) AnalyzeIntent(_ context.Context, in core.Input, uc core.UserContext, _ map[string]any) core.UserIntent {
	mood := collaborationMood(in, uc)
	energyLevel := in.Int("energyLevel")

	categories := []string{"fitness", "health"}
	if mood != "" && mood != "neutral" {
		categories = append(categories, "mood_support")
	}
	if energyLevel > 0 {
		categories = append(categories, "energy_optimization")
	}
	if in.String(core.InputKeyTriggeringAgent) != "" {
		categories = append(categories, "collaboration")
	}

	urgency := core.UrgencyMedium
	if mood == "stressed" || mood == "anxious" {
		urgency = core.UrgencyHigh
	}
	if energyLevel > 0 && energyLevel < 3 {
		urgency = core.UrgencyLow
	}

	energyDesc := "moderate"
	if energyLevel > 0 {
		energyDesc = fmt.Sprintf("%d", energyLevel)
	}

	return core.UserIntent{
		Summary:    fmt.Sprintf("Create fitness plan for %s state with %s energy", mood, energyDesc),
		Categories: categories,
		Urgency:    urgency,
		Confidence: 0.88,
		Entities:   []string{mood},
		Category:   "fitness",
	}
}

// Actions implements Capability.
func (f *FlexGenie) Actions() []core.AgentAction {
	return []core.AgentAction{
		{
			Name:          "generate_workout_plan",
			Description:   "create personalized workout recommendations",
			Categories:    []string{"fitness", "workout_planning"},
			BasePriority:  0.9,
			RequiredTools: []string{"workout_planning"},
			Benefits:      []string{"improved_fitness", "mood_enhancement", "energy_boost", "stress_relief"},
			Risks:         []string{"overexertion", "injury_risk"},
		},
		{
			Name:          "adapt_intensity",
			Description:   "adjust workout intensity based on current state",
			Categories:    []string{"fitness", "energy_adaptation"},
			BasePriority:  0.85,
			RequiredTools: []string{"energy_adaptation"},
			Benefits:      []string{"optimal_performance", "injury_prevention", "sustainable_progress"},
			Risks:         []string{"under_training"},
		},
		{
			Name:          "recommend_videos",
			Description:   "provide workout video recommendations",
			Categories:    []string{"fitness", "video_recommendations"},
			BasePriority:  0.8,
			RequiredTools: []string{"video_recommendations"},
			Benefits:      []string{"guided_workouts", "proper_form", "motivation"},
			Risks:         []string{"screen_dependency"},
		},
		{
			Name:          "plan_recovery",
			Description:   "create recovery and rest day plans",
			Categories:    []string{"fitness", "recovery"},
			BasePriority:  0.7,
			RequiredTools: []string{"recovery_planning"},
			Benefits:      []string{"injury_prevention", "improved_performance", "better_sleep"},
			Risks:         []string{"reduced_activity"},
		},
	}
}

// ExecuteStep implements Capability.
func (f *FlexGenie) ExecuteStep(ctx context.Context, step core.ExecutionStep, sc *core.StepContext) core.StepResult {
	switch step.Name {
	case core.StepPrepare:
		return f.prepare(sc)
	case core.StepExecuteMain:
		return f.generateRecommendations(ctx, sc)
	case core.StepFinalize:
		return f.finalize(sc)
	}
	return core.StepResult{
		Step:    step.Name,
		Success: false,
		Err:     core.Errorf(core.ErrorKindStep, "unknown step: %s", step.Name),
	}
}

func (f *FlexGenie) prepare(sc *core.StepContext) core.StepResult {
	var mem core.FitnessMemory
	if err := core.DecodeMemoryData(sc.Memory, &mem); err != nil {
		return core.StepResult{Step: core.StepPrepare, Success: false, Err: err}
	}

	mood := collaborationMood(sc.Input, sc.UserContext)
	energy := assessEnergyLevel(mood, mem.LastEnergyLevel)
	intensity := adaptIntensity(mood, energy)

	return core.StepResult{
		Step:    core.StepPrepare,
		Success: true,
		Data: map[string]any{
			"mood":        mood,
			"energyLevel": energy,
			"intensity":   intensity,
			"workoutType": determineWorkoutType(mood, intensity),
		},
	}
}

func (f *FlexGenie) generateRecommendations(ctx context.Context, sc *core.StepContext) core.StepResult {
	mood := collaborationMood(sc.Input, sc.UserContext)
	energy := assessEnergyLevel(mood, 0)
	intensity := adaptIntensity(mood, energy)
	workoutType := determineWorkoutType(mood, intensity)

	if out, ok := sc.Output(core.StepPrepare); ok {
		if data, ok := out.(map[string]any); ok {
			if m, ok := data["mood"].(string); ok && m != "" {
				mood = m
			}
			if e, ok := data["energyLevel"].(int); ok {
				energy = e
			}
			if i, ok := data["intensity"].(int); ok {
				intensity = i
			}
			if w, ok := data["workoutType"].(string); ok && w != "" {
				workoutType = w
			}
		}
	}

	timeBudget := sc.Input.Int(core.InputKeyTimeBudget)
	if timeBudget <= 0 {
		timeBudget = defaultWorkoutDuration
	}

	plan, err := f.Provider().WorkoutPlan(ctx, mood, intensity, timeBudget)
	if err != nil {
		f.opts.Logger.Warn("workout provider failed, using fallback", "agent", f.Name(), "mood", mood, "error", err)
		plan = content.FallbackWorkoutPlan(mood, intensity, timeBudget)
	}

	videos, err := f.Provider().WorkoutVideos(ctx, mood)
	if err != nil || len(videos) == 0 {
		videos = content.FallbackWorkoutVideos(mood)
	}

	return core.StepResult{
		Step:    core.StepExecuteMain,
		Success: true,
		Data: map[string]any{
			"mood":                 mood,
			"workoutType":          workoutType,
			"workoutPlan":          plan,
			"videoRecommendations": videos,
			"energyAdaptation":     energyAdaptationInsights(energy, intensity),
			"recoveryGuidance":     recoveryGuidance(mood, intensity),
		},
	}
}

func (f *FlexGenie) finalize(sc *core.StepContext) core.StepResult {
	out, ok := sc.Output(core.StepExecuteMain)
	if !ok {
		return core.StepResult{
			Step:    core.StepFinalize,
			Success: false,
			Err:     core.Errorf(core.ErrorKindStep, "workout generation produced no data"),
		}
	}

	data, _ := out.(map[string]any)
	mood, _ := data["mood"].(string)

	tips, ok := moodFitnessTips[mood]
	if !ok {
		tips = defaultFitnessTips
	}

	payload := map[string]any{
		"confidence":      0.88,
		"recommendations": tips,
		"progressTracking": map[string]any{
			"metrics":  []string{"workouts_completed", "energy_levels", "mood_improvements"},
			"checkIns": "weekly",
		},
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

// assessEnergyLevel averages the mood's baseline energy with the historical
// level, defaulting both to 6.
func assessEnergyLevel(mood string, historical int) int {
	base, ok := moodEnergy[mood]
	if !ok {
		base = defaultEnergyLevel
	}
	if historical <= 0 {
		historical = defaultEnergyLevel
	}
	return int(math.Round(float64(base+historical) / 2))
}

// adaptIntensity applies the mood modifier to the energy level, clamped to
// [1, 10].
func adaptIntensity(mood string, energy int) int {
	intensity := energy + moodIntensityModifiers[mood]
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 10 {
		intensity = 10
	}
	return intensity
}

// determineWorkoutType selects yoga for low intensity or anxious states, HIIT
// for high energy, strength otherwise.
func determineWorkoutType(mood string, intensity int) string {
	switch {
	case intensity <= 3:
		return "yoga"
	case mood == "stressed" || mood == "anxious":
		return "yoga"
	case intensity >= 8:
		return "hiit"
	case mood == "excited":
		return "hiit"
	}
	return "strength"
}

func energyAdaptationInsights(energy, intensity int) map[string]any {
	note := "Workout intensity matched to your current energy"
	if intensity < energy {
		note = "Intensity dialed down to protect recovery in your current state"
	}
	if intensity > energy {
		note = "Intensity raised slightly to make the most of your energy"
	}
	return map[string]any{
		"energyLevel":      energy,
		"adaptedIntensity": intensity,
		"note":             note,
	}
}

func recoveryGuidance(mood string, intensity int) []string {
	guidance := []string{"Stretch for 5 minutes after the session", "Aim for 7-9 hours of sleep tonight"}
	if mood == "stressed" || mood == "anxious" {
		guidance = append(guidance, "Finish with 2 minutes of slow breathing")
	}
	if intensity >= 8 {
		guidance = append(guidance, "Schedule a rest or light activity day tomorrow")
	}
	return guidance
}

// BuildOutput implements Capability.
func (f *FlexGenie) BuildOutput(results []core.StepResult, _ *core.StepContext) map[string]any {
	data := primaryData(results)
	if data == nil {
		return map[string]any{
			"error":    "Failed to generate fitness recommendations",
			"fallback": "Try some light stretching or a short walk to get started",
		}
	}
	payload, ok := data.(map[string]any)
	if !ok {
		payload = map[string]any{"workoutPlan": data}
	}
	return payload
}

// CollaborationTriggers implements Capability. FlexGenie is a collaboration
// target and never re-triggers peers.
func (f *FlexGenie) CollaborationTriggers(_ []core.StepResult, _ *core.StepContext) []string {
	return nil
}

// MemoryUpdate implements Capability.
func (f *FlexGenie) MemoryUpdate(results []core.StepResult, sc *core.StepContext, success bool) map[string]any {
	var mem core.FitnessMemory
	if err := core.DecodeMemoryData(sc.Memory, &mem); err != nil {
		f.opts.Logger.Warn("fitness memory decode failed", "agent", f.Name(), "error", err)
		return nil
	}

	if data, ok := primaryData(results).(map[string]any); ok {
		if workoutType, ok := data["workoutType"].(string); ok && workoutType != "" {
			mem.LastWorkoutType = workoutType
		}
		if adaptation, ok := data["energyAdaptation"].(map[string]any); ok {
			if energy, ok := adaptation["energyLevel"].(int); ok {
				mem.LastEnergyLevel = energy
			}
		}
	}
	if success {
		mem.SuccessfulRuns++
	}

	data, err := core.EncodeMemoryData(mem)
	if err != nil {
		f.opts.Logger.Warn("fitness memory encode failed", "agent", f.Name(), "error", err)
		return nil
	}
	return data
}

// ErrorResponse implements Capability.
func (f *FlexGenie) ErrorResponse(err error, _ core.Input) string {
	switch core.KindOf(err) {
	case core.ErrorKindProvider:
		return "I'm having trouble accessing fitness data right now. Let me suggest some basic exercises you can do anywhere!"
	case core.ErrorKindUserProfile:
		return "I need to know your current energy level to create the best workout plan for you. How are you feeling today?"
	}
	return "I encountered an issue while creating your workout plan. Let me provide some general fitness tips instead."
}
