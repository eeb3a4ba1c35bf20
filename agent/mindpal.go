package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
)

// Compile time check to ensure MindPal satisfies the core.Agent and
// Capability interfaces.
var (
	_ core.Agent = (*MindPal)(nil)
	_ Capability = (*MindPal)(nil)
)

// concerningMoods require immediate-support handling in the safety assessment.
var concerningMoods = map[string]bool{
	"suicidal":  true,
	"hopeless":  true,
	"depressed": true,
}

// moodIntensity grades emotional intensity (1-10) per mood.
var moodIntensity = map[string]int{
	"suicidal":    10,
	"depressed":   9,
	"hopeless":    9,
	"panicked":    9,
	"anxious":     7,
	"overwhelmed": 7,
	"stressed":    6,
	"angry":       6,
	"excited":     6,
	"sad":         5,
	"joyful":      5,
	"tired":       4,
	"happy":       4,
	"neutral":     3,
	"focused":     3,
	"calm":        2,
	"content":     2,
}

const defaultMoodIntensity = 5

// moodRegulationTechniques are the emotional regulation techniques per mood.
var moodRegulationTechniques = map[string][]string{
	"anxious":     {"Box breathing (4-4-4-4)", "Progressive muscle relaxation", "Grounding exercises"},
	"stressed":    {"Deep breathing", "Body scan meditation", "Stress ball exercises"},
	"sad":         {"Gratitude journaling", "Self-compassion exercises", "Gentle movement"},
	"angry":       {"Count slowly before responding", "Physical release like a brisk walk", "Write down the trigger"},
	"overwhelmed": {"Brain dump journaling", "Single-task focus", "Short mindful pauses"},
}

var defaultRegulationTechniques = []string{"Mindful breathing", "Present moment awareness"}

// mindfulnessExercise is one guided practice from the static exercise library.
type mindfulnessExercise struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"` // minutes
	Focus    string `json:"focus"`
}

var mindfulnessLibrary = map[string]mindfulnessExercise{
	"breathing":       {Name: "4-7-8 Breathing", Duration: 5, Focus: "calming the nervous system"},
	"body_scan":       {Name: "Progressive Body Scan", Duration: 10, Focus: "releasing physical tension"},
	"loving_kindness": {Name: "Loving-Kindness Meditation", Duration: 8, Focus: "self-compassion"},
	"grounding":       {Name: "5-4-3-2-1 Grounding", Duration: 3, Focus: "anchoring in the present"},
}

// selectMindfulnessExercises picks two library practices suited to the mood
// and intensity.
func selectMindfulnessExercises(mood string, intensity int) []mindfulnessExercise {
	switch {
	case mood == "anxious" || intensity >= 7:
		return []mindfulnessExercise{mindfulnessLibrary["breathing"], mindfulnessLibrary["grounding"]}
	case mood == "stressed":
		return []mindfulnessExercise{mindfulnessLibrary["body_scan"], mindfulnessLibrary["breathing"]}
	case mood == "sad":
		return []mindfulnessExercise{mindfulnessLibrary["loving_kindness"], mindfulnessLibrary["body_scan"]}
	}
	return []mindfulnessExercise{mindfulnessLibrary["breathing"], mindfulnessLibrary["body_scan"]}
}

// defaultJournalPrompt is used when a saved journal entry has no eliciting
// prompt recorded in memory.
const defaultJournalPrompt = "Daily reflection"

// MindPal provides mental wellness support: safety assessment, journal
// prompts, affirmations, mindfulness practices and cognitive tools. It also
// exposes SaveJournalEntry as a direct side door for the orchestrator's chat
// flow.
type MindPal struct {
	*Base
}

// NewMindPal creates a new MindPal agent.
func NewMindPal(optFns ...func(o *Options)) *MindPal {
	m := &MindPal{}
	m.Base = NewBase(m, applyOptions(optFns))
	return m
}

// Name implements Capability.
func (m *MindPal) Name() string { return "MindPal" }

// Role implements Capability.
func (m *MindPal) Role() string { return "Mental Wellness & Emotional Intelligence" }

// Tools implements Capability.
func (m *MindPal) Tools() []string {
	return []string{"journal_prompts", "affirmations", "emotional_regulation", "mindfulness", "cbt_techniques"}
}

// MustDo implements Capability.
func (m *MindPal) MustDo() []string {
	return []string{"generate_journal_prompts", "provide_emotional_support", "guide_mindfulness", "track_mental_wellness"}
}

// TypeTag implements Capability.
func (m *MindPal) TypeTag() string { return "mental_wellness" }

// AnalyzeIntent implements Capability.
func (m *MindPal) AnalyzeIntent(_ context.Context, in core.Input, uc core.UserContext, _ map[string]any) core.UserIntent {
	mood := collaborationMood(in, uc)
	stressLevel := in.Int(core.InputKeyStressLevel)

	categories := []string{"mental_health", "emotional_wellness"}
	if mood != "" && mood != "neutral" {
		categories = append(categories, "mood_support")
	}
	if in.String(core.InputKeyTriggeringAgent) != "" {
		categories = append(categories, "collaboration")
	}
	if stressLevel > 7 {
		categories = append(categories, "crisis_support")
	}

	urgency := core.UrgencyMedium
	switch {
	case mood == "depressed" || mood == "suicidal":
		urgency = core.UrgencyHigh
	case stressLevel >= 8:
		urgency = core.UrgencyHigh
	case mood == "anxious" || mood == "panicked":
		urgency = core.UrgencyHigh
	}

	return core.UserIntent{
		Summary:    fmt.Sprintf("Provide mental wellness support for %s state", mood),
		Categories: categories,
		Urgency:    urgency,
		Confidence: 0.92,
		Entities:   []string{mood},
		Category:   "mental_health",
	}
}

// Actions implements Capability.
func (m *MindPal) Actions() []core.AgentAction {
	return []core.AgentAction{
		{
			Name:          "generate_therapeutic_support",
			Description:   "provide comprehensive therapeutic support",
			Categories:    []string{"mental_health", "therapeutic_support"},
			BasePriority:  0.95,
			RequiredTools: []string{"therapeutic_techniques"},
			Benefits:      []string{"emotional_stabilization", "crisis_support", "professional_guidance"},
			Risks:         []string{"scope_of_practice"},
		},
		{
			Name:          "cognitive_restructuring",
			Description:   "guide cognitive restructuring exercises",
			Categories:    []string{"cbt", "cognitive_therapy"},
			BasePriority:  0.9,
			RequiredTools: []string{"cbt_techniques"},
			Benefits:      []string{"thought_awareness", "reframing_skills"},
			Risks:         []string{"requires_practice"},
		},
		{
			Name:          "create_journal_prompts",
			Description:   "create personalized journal prompts",
			Categories:    []string{"journaling", "self_reflection"},
			BasePriority:  0.85,
			RequiredTools: []string{"journal_prompts"},
			Benefits:      []string{"self_awareness", "emotional_processing"},
			Risks:         []string{"rumination"},
		},
		{
			Name:          "guide_mindfulness_practice",
			Description:   "guide a mindfulness practice session",
			Categories:    []string{"mindfulness", "stress_reduction"},
			BasePriority:  0.8,
			RequiredTools: []string{"mindfulness"},
			Benefits:      []string{"stress_reduction", "present_moment_awareness"},
			Risks:         []string{"initial_discomfort"},
		},
	}
}

// ExecuteStep implements Capability.
func (m *MindPal) ExecuteStep(ctx context.Context, step core.ExecutionStep, sc *core.StepContext) core.StepResult {
	switch step.Name {
	case core.StepPrepare:
		return m.assessSafety(sc)
	case core.StepExecuteMain:
		return m.generateSupport(ctx, sc)
	case core.StepFinalize:
		return m.finalize(sc)
	}
	return core.StepResult{
		Step:    step.Name,
		Success: false,
		Err:     core.Errorf(core.ErrorKindStep, "unknown step: %s", step.Name),
	}
}

// assessSafety runs the safety assessment before any content generation.
// Concerning moods raise the risk level and attach immediate crisis resources.
func (m *MindPal) assessSafety(sc *core.StepContext) core.StepResult {
	mood := collaborationMood(sc.Input, sc.UserContext)
	intensity, ok := moodIntensity[mood]
	if !ok {
		intensity = defaultMoodIntensity
	}

	concerning := concerningMoods[mood]

	assessment := map[string]any{
		"mood":                  mood,
		"intensity":             intensity,
		"riskLevel":             "low",
		"needsImmediateSupport": false,
	}
	if concerning {
		assessment["riskLevel"] = "high"
		assessment["needsImmediateSupport"] = true
		assessment["crisisResources"] = content.CrisisResources()
	}
	if concerning || intensity >= 9 {
		assessment["recommendProfessionalHelp"] = true
	}

	return core.StepResult{
		Step:    core.StepPrepare,
		Success: true,
		Data:    assessment,
	}
}

func (m *MindPal) generateSupport(ctx context.Context, sc *core.StepContext) core.StepResult {
	mood := collaborationMood(sc.Input, sc.UserContext)
	intensity := defaultMoodIntensity
	if out, ok := sc.Output(core.StepPrepare); ok {
		if data, ok := out.(map[string]any); ok {
			if mo, ok := data["mood"].(string); ok && mo != "" {
				mood = mo
			}
			if in, ok := data["intensity"].(int); ok {
				intensity = in
			}
		}
	}

	stressLevel := sc.Input.Int(core.InputKeyStressLevel)
	if stressLevel <= 0 {
		stressLevel = intensity
	}

	support, err := m.Provider().MentalWellnessSupport(ctx, mood, stressLevel)
	if err != nil {
		m.opts.Logger.Warn("mental wellness provider failed, using fallback", "agent", m.Name(), "mood", mood, "error", err)
		support = content.FallbackMentalSupport(mood, stressLevel)
	}

	techniques, ok := moodRegulationTechniques[mood]
	if !ok {
		techniques = defaultRegulationTechniques
	}

	return core.StepResult{
		Step:    core.StepExecuteMain,
		Success: true,
		Data: map[string]any{
			"mood":                 mood,
			"stressLevel":          stressLevel,
			"journalPrompt":        support.JournalPrompt,
			"affirmation":          support.Affirmation,
			"techniques":           support.Techniques,
			"regulationTechniques": techniques,
			"mindfulnessExercises": selectMindfulnessExercises(mood, intensity),
			"cognitiveTools":       cognitiveTools(mood),
			"therapyResources":     support.TherapyResources,
		},
	}
}

func (m *MindPal) finalize(sc *core.StepContext) core.StepResult {
	out, ok := sc.Output(core.StepExecuteMain)
	if !ok {
		return core.StepResult{
			Step:    core.StepFinalize,
			Success: false,
			Err:     core.Errorf(core.ErrorKindStep, "support generation produced no data"),
		}
	}

	payload := map[string]any{"confidence": 0.92}
	if data, ok := out.(map[string]any); ok {
		for k, v := range data {
			payload[k] = v
		}
	}
	if assessment, ok := sc.Output(core.StepPrepare); ok {
		payload["safetyAssessment"] = assessment
	}

	return core.StepResult{
		Step:    core.StepFinalize,
		Success: true,
		Data:    payload,
	}
}

func cognitiveTools(mood string) map[string]any {
	activation := "Plan one small enjoyable activity for today"
	switch mood {
	case "sad":
		activation = "Schedule one gentle, pleasant activity such as a walk or calling a friend"
	case "anxious":
		activation = "Break the worrying task into one small first step and do only that"
	case "stressed":
		activation = "Pick the single most important task and defer the rest for an hour"
	}

	return map[string]any{
		"thoughtRecord": []string{
			"Describe the situation",
			"Write down the automatic thought",
			"Note the emotion and its intensity",
			"Find a balanced alternative thought",
		},
		"reframing": []string{
			"Examine the evidence for and against the thought",
			"Consider what you would tell a friend",
			"Rate how likely the feared outcome really is",
		},
		"behavioralActivation": activation,
	}
}

// BuildOutput implements Capability.
func (m *MindPal) BuildOutput(results []core.StepResult, _ *core.StepContext) map[string]any {
	data := primaryData(results)
	if data == nil {
		return map[string]any{
			"error":    "Failed to generate mental wellness support",
			"fallback": "Take a moment to breathe deeply and remember that you're not alone in this journey.",
		}
	}
	payload, ok := data.(map[string]any)
	if !ok {
		payload = map[string]any{"support": data}
	}
	return payload
}

// CollaborationTriggers implements Capability. MindPal is a collaboration
// target and never re-triggers peers.
func (m *MindPal) CollaborationTriggers(_ []core.StepResult, _ *core.StepContext) []string {
	return nil
}

// MemoryUpdate implements Capability.
func (m *MindPal) MemoryUpdate(results []core.StepResult, sc *core.StepContext, success bool) map[string]any {
	var mem core.MindMemory
	if err := core.DecodeMemoryData(sc.Memory, &mem); err != nil {
		m.opts.Logger.Warn("mind memory decode failed", "agent", m.Name(), "error", err)
		return nil
	}

	if data, ok := primaryData(results).(map[string]any); ok {
		if prompt, ok := data["journalPrompt"].(string); ok && prompt != "" {
			mem.LastJournalPrompt = prompt
		}
		if stress, ok := data["stressLevel"].(int); ok {
			mem.StressLevel = stress
		}
		if assessment, ok := data["safetyAssessment"].(map[string]any); ok {
			if risk, ok := assessment["riskLevel"].(string); ok {
				mem.LastRiskLevel = risk
			}
		}
	}
	if success {
		mem.SuccessfulRuns++
	}

	data, err := core.EncodeMemoryData(mem)
	if err != nil {
		m.opts.Logger.Warn("mind memory encode failed", "agent", m.Name(), "error", err)
		return nil
	}
	return data
}

// ErrorResponse implements Capability.
func (m *MindPal) ErrorResponse(err error, _ core.Input) string {
	switch core.KindOf(err) {
	case core.ErrorKindStorage:
		return "I'm having trouble accessing your journal data right now, but here are some general reflection prompts to get you started."
	case core.ErrorKindUserProfile:
		return "I'd like to understand how you're feeling to offer the right support. Can you share what's on your mind?"
	}
	return "I encountered an issue while preparing your wellness support. Let me offer some immediate grounding techniques instead."
}

// SaveJournalEntry persists a journal text for the user, attaching the last
// prompt this agent generated (if any) as the eliciting prompt. It is called
// directly by the orchestrator's chat flow, outside the run cycle.
func (m *MindPal) SaveJournalEntry(_ context.Context, userID int, text string) (core.JournalEntry, error) {
	if m.opts.Wellness == nil {
		return core.JournalEntry{}, core.Errorf(core.ErrorKindStorage, "no wellness store configured")
	}

	prompt := defaultJournalPrompt
	var mem core.MindMemory
	if err := core.DecodeMemoryData(m.loadMemory(userID), &mem); err == nil && mem.LastJournalPrompt != "" {
		prompt = mem.LastJournalPrompt
	}

	entry, err := m.opts.Wellness.CreateJournalEntry(userID, text, prompt)
	if err != nil {
		return core.JournalEntry{}, core.NewError(core.ErrorKindStorage, err)
	}

	m.opts.Logger.Info("journal entry saved", "agent", m.Name(), "user_id", userID, "entry_id", entry.ID)
	return entry, nil
}
