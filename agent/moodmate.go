package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
)

// Compile time check to ensure MoodMate satisfies the core.Agent and
// Capability interfaces.
var (
	_ core.Agent  = (*MoodMate)(nil)
	_ Capability  = (*MoodMate)(nil)
	_ StepPlanner = (*MoodMate)(nil)
)

// moodKeywords are the moods MoodMate recognizes directly in free text.
var moodKeywords = []string{
	"happy", "sad", "stressed", "anxious", "excited", "tired", "angry",
	"calm", "depressed", "frustrated", "overwhelmed", "content", "focused",
}

// sentimentMoods maps coarse sentiment labels onto tracked moods.
var sentimentMoods = map[string]string{
	"positive": "happy",
	"negative": "sad",
	"joy":      "happy",
	"anger":    "angry",
	"fear":     "anxious",
	"sadness":  "sad",
	"surprise": "excited",
	"disgust":  "frustrated",
}

// moodTriggerKeywords are the life-area triggers scanned for in messages.
var moodTriggerKeywords = []string{
	"work", "family", "relationship", "health", "money", "school",
	"friends", "weather", "sleep", "exercise", "food",
}

// moodScores grade moods for trend analysis; higher is better.
var moodScores = map[string]float64{
	"happy":    5,
	"excited":  4,
	"calm":     3,
	"neutral":  2.5,
	"tired":    2,
	"stressed": 1.5,
	"sad":      1,
	"anxious":  0.5,
}

func moodScore(mood string) float64 {
	if s, ok := moodScores[mood]; ok {
		return s
	}
	return 2.5
}

// supportMessages are the canned emotional support lines per mood.
var supportMessages = map[string]string{
	"sad":      "It's okay to feel sad sometimes. Your feelings are valid, and this difficult moment will pass.",
	"anxious":  "Anxiety can feel overwhelming, but you have the strength to work through this. Try taking slow, deep breaths.",
	"stressed": "Stress is your mind's way of saying you care. Let's find some ways to lighten that load together.",
	"happy":    "It's wonderful to see you feeling happy! Savor this moment and let that positive energy carry you forward.",
}

const defaultSupportMessage = "Whatever you're feeling right now is okay. I'm here to support you through it."

// moodHistoryLimit bounds the rolling mood history kept in memory.
const moodHistoryLimit = 50

// moodPatternWindow is how many recent samples pattern analysis considers.
const moodPatternWindow = 14

// MoodMate tracks mood, recommends music and offers emotional support. It is
// the entry point of the mood-update flow and triggers nutrition, fitness and
// mental wellness collaborations for difficult moods.
type MoodMate struct {
	*Base
}

// NewMoodMate creates a new MoodMate agent.
func NewMoodMate(optFns ...func(o *Options)) *MoodMate {
	m := &MoodMate{}
	m.Base = NewBase(m, applyOptions(optFns))
	return m
}

// Name implements Capability.
func (m *MoodMate) Name() string { return "MoodMate" }

// Role implements Capability.
func (m *MoodMate) Role() string { return "Emotional Wellness Companion" }

// Tools implements Capability.
func (m *MoodMate) Tools() []string {
	return []string{"mood_analysis", "music_recommendations", "sentiment_analysis", "emotional_memory"}
}

// MustDo implements Capability.
func (m *MoodMate) MustDo() []string {
	return []string{"track_mood", "suggest_music", "analyze_sentiment", "save_mood_data"}
}

// TypeTag implements Capability.
func (m *MoodMate) TypeTag() string { return "mood" }

// AnalyzeIntent implements Capability. Confidence is 0.9 when the input names
// a mood directly, 0.8 when the mood has to be inferred from text.
func (m *MoodMate) AnalyzeIntent(_ context.Context, in core.Input, uc core.UserContext, _ map[string]any) core.UserIntent {
	mood := in.String(core.InputKeyMood)
	message := in.String(core.InputKeyMessage)

	confidence := 0.9
	if mood == "" {
		confidence = 0.8
		mood = detectMood(message, uc)
	}

	entities := []string{mood}
	lower := strings.ToLower(message)
	for _, trigger := range moodTriggerKeywords {
		if strings.Contains(lower, trigger) {
			entities = append(entities, trigger)
		}
	}

	return core.UserIntent{
		Summary:    fmt.Sprintf("User wants to track/analyze mood: %s", mood),
		Categories: []string{"mood", "emotional_wellness"},
		Urgency:    moodUrgency(mood),
		Confidence: confidence,
		Entities:   entities,
		Category:   "mood",
	}
}

func moodUrgency(mood string) core.Urgency {
	switch mood {
	case "depressed", "suicidal", "panic", "crisis":
		return core.UrgencyHigh
	case "anxious", "stressed", "angry", "overwhelmed":
		return core.UrgencyMedium
	}
	return core.UrgencyLow
}

// detectMood scans a message for known mood keywords, falling back to the
// user's current mood and then to neutral.
func detectMood(message string, uc core.UserContext) string {
	lower := strings.ToLower(message)
	for _, keyword := range moodKeywords {
		if strings.Contains(lower, keyword) {
			return keyword
		}
	}
	for sentiment, mood := range sentimentMoods {
		if strings.Contains(lower, sentiment) {
			return mood
		}
	}
	if uc.CurrentMood != "" {
		return uc.CurrentMood
	}
	return "neutral"
}

// Actions implements Capability.
func (m *MoodMate) Actions() []core.AgentAction {
	return []core.AgentAction{
		{
			Name:          "track_mood_with_music",
			Description:   "track the mood and suggest matching music",
			Categories:    []string{"mood", "music"},
			BasePriority:  0.9,
			RequiredTools: []string{"mood_analysis", "music_recommendations"},
			Benefits:      []string{"mood_awareness", "emotional_regulation", "music_therapy"},
			Risks:         []string{"mood_fixation"},
		},
		{
			Name:          "analyze_sentiment_deep",
			Description:   "analyze the emotional tone of the message in depth",
			Categories:    []string{"mood", "analysis"},
			BasePriority:  0.8,
			RequiredTools: []string{"sentiment_analysis"},
			Benefits:      []string{"emotional_insight", "better_recommendations"},
			Risks:         []string{"misclassification"},
		},
		{
			Name:          "provide_emotional_support",
			Description:   "offer empathetic support and coping techniques",
			Categories:    []string{"emotional_wellness", "support"},
			BasePriority:  0.7,
			RequiredTools: []string{"emotional_memory"},
			Benefits:      []string{"emotional_validation", "coping_skills"},
			Risks:         []string{"over_reliance"},
		},
		{
			Name:          "mood_pattern_analysis",
			Description:   "analyze mood history for recurring patterns",
			Categories:    []string{"mood", "analysis"},
			BasePriority:  0.6,
			RequiredTools: []string{"emotional_memory"},
			Benefits:      []string{"pattern_awareness", "trend_insight"},
			Risks:         []string{"insufficient_data"},
		},
	}
}

// Steps implements StepPlanner. Every run starts by analyzing the mood; the
// remaining steps depend on the selected approach.
func (m *MoodMate) Steps(selected core.Alternative, _ core.AgentPlan) []core.ExecutionStep {
	steps := []core.ExecutionStep{
		{Name: "analyze_mood", Description: "Determine the user's current mood", ExpectedOutput: "analyze_mood"},
	}

	switch selected.Action.Name {
	case "track_mood_with_music":
		steps = append(steps,
			core.ExecutionStep{Name: "get_music_recommendations", Description: "Suggest music for the mood", RequiredData: []string{"analyze_mood"}, ExpectedOutput: "get_music_recommendations"},
			core.ExecutionStep{Name: "save_mood_data", Description: "Persist the mood reading", RequiredData: []string{"analyze_mood"}, ExpectedOutput: "save_mood_data"},
		)
	case "provide_emotional_support":
		steps = append(steps,
			core.ExecutionStep{Name: "provide_emotional_support", Description: "Offer support and coping techniques", RequiredData: []string{"analyze_mood"}, ExpectedOutput: "provide_emotional_support"},
		)
	case "mood_pattern_analysis":
		steps = append(steps,
			core.ExecutionStep{Name: "analyze_patterns", Description: "Analyze mood history for patterns", RequiredData: []string{"analyze_mood"}, ExpectedOutput: "analyze_patterns"},
		)
	case "analyze_sentiment_deep":
		// analyze_mood already covers sentiment extraction.
	default:
		steps = append(steps,
			core.ExecutionStep{Name: "save_mood_data", Description: "Persist the mood reading", RequiredData: []string{"analyze_mood"}, ExpectedOutput: "save_mood_data"},
		)
	}

	return steps
}

// ExecuteStep implements Capability.
func (m *MoodMate) ExecuteStep(ctx context.Context, step core.ExecutionStep, sc *core.StepContext) core.StepResult {
	switch step.Name {
	case "analyze_mood":
		return m.analyzeMood(sc)
	case "get_music_recommendations":
		return m.musicRecommendations(ctx, sc)
	case "save_mood_data":
		return m.saveMoodData(sc)
	case "provide_emotional_support":
		return m.emotionalSupport(sc)
	case "analyze_patterns":
		return m.analyzePatterns(sc)
	}
	return core.StepResult{
		Step:    step.Name,
		Success: false,
		Err:     core.Errorf(core.ErrorKindStep, "unknown step: %s", step.Name),
	}
}

func (m *MoodMate) analyzeMood(sc *core.StepContext) core.StepResult {
	mood := sc.Input.String(core.InputKeyMood)
	if mood == "" {
		mood = detectMood(sc.Input.String(core.InputKeyMessage), sc.UserContext)
	}

	return core.StepResult{
		Step:    "analyze_mood",
		Success: true,
		Data: map[string]any{
			"mood":  mood,
			"score": moodScore(mood),
		},
	}
}

func (m *MoodMate) musicRecommendations(ctx context.Context, sc *core.StepContext) core.StepResult {
	mood := stepMood(sc)

	music, err := m.Provider().MusicForMood(ctx, mood)
	if err != nil {
		m.opts.Logger.Warn("music provider failed, using fallback", "agent", m.Name(), "mood", mood, "error", err)
		music = content.FallbackMusic(mood)
	}

	return core.StepResult{
		Step:    "get_music_recommendations",
		Success: true,
		Data: map[string]any{
			"playlists": music.Playlists,
			"quote":     music.Quote,
		},
	}
}

func (m *MoodMate) saveMoodData(sc *core.StepContext) core.StepResult {
	mood := stepMood(sc)

	saved := false
	if m.opts.Wellness != nil {
		if _, err := m.opts.Wellness.CreateMoodEntry(sc.UserID, mood); err != nil {
			return core.StepResult{
				Step:    "save_mood_data",
				Success: false,
				Err:     core.NewError(core.ErrorKindStorage, err),
			}
		}
		saved = true
	}

	return core.StepResult{
		Step:    "save_mood_data",
		Success: true,
		Data: map[string]any{
			"mood":  mood,
			"saved": saved,
		},
	}
}

func (m *MoodMate) emotionalSupport(sc *core.StepContext) core.StepResult {
	mood := stepMood(sc)

	message, ok := supportMessages[mood]
	if !ok {
		message = defaultSupportMessage
	}

	return core.StepResult{
		Step:    "provide_emotional_support",
		Success: true,
		Data: map[string]any{
			"message":    message,
			"techniques": content.FallbackTechniques(mood),
		},
	}
}

func (m *MoodMate) analyzePatterns(sc *core.StepContext) core.StepResult {
	var mem core.MoodMemory
	if err := core.DecodeMemoryData(sc.Memory, &mem); err != nil {
		return core.StepResult{Step: "analyze_patterns", Success: false, Err: err}
	}

	history := mem.MoodHistory
	if len(history) > moodPatternWindow {
		history = history[len(history)-moodPatternWindow:]
	}

	if len(history) < 5 {
		return core.StepResult{
			Step:    "analyze_patterns",
			Success: true,
			Data: map[string]any{
				"message": "Insufficient data for pattern analysis. Keep tracking!",
			},
		}
	}

	return core.StepResult{
		Step:    "analyze_patterns",
		Success: true,
		Data: map[string]any{
			"dominantMood": dominantMood(history),
			"trend":        moodTrend(history),
			"sampleCount":  len(history),
		},
	}
}

func dominantMood(history []core.MoodSample) string {
	counts := map[string]int{}
	for _, sample := range history {
		counts[sample.Mood]++
	}
	best, bestCount := "", 0
	for _, sample := range history {
		if counts[sample.Mood] > bestCount {
			best, bestCount = sample.Mood, counts[sample.Mood]
		}
	}
	return best
}

// moodTrend compares the average score of the last three samples with the
// three before them; a 0.5 shift in either direction counts as a trend.
func moodTrend(history []core.MoodSample) string {
	if len(history) < 6 {
		return "insufficient_data"
	}

	avg := func(samples []core.MoodSample) float64 {
		total := 0.0
		for _, s := range samples {
			total += s.Score
		}
		return total / float64(len(samples))
	}

	recent := avg(history[len(history)-3:])
	prior := avg(history[len(history)-6 : len(history)-3])

	switch {
	case recent-prior > 0.5:
		return "improving"
	case prior-recent > 0.5:
		return "declining"
	}
	return "stable"
}

// stepMood reads the mood determined by the analyze_mood step, falling back to
// the user context.
func stepMood(sc *core.StepContext) string {
	if out, ok := sc.Output("analyze_mood"); ok {
		if data, ok := out.(map[string]any); ok {
			if mood, ok := data["mood"].(string); ok && mood != "" {
				return mood
			}
		}
	}
	if sc.UserContext.CurrentMood != "" {
		return sc.UserContext.CurrentMood
	}
	return "neutral"
}

// BuildOutput implements Capability.
func (m *MoodMate) BuildOutput(results []core.StepResult, sc *core.StepContext) map[string]any {
	payload := map[string]any{"mood": stepMood(sc)}

	if data := stepData(results, "get_music_recommendations"); data != nil {
		payload["music"] = data
	}
	if data := stepData(results, "provide_emotional_support"); data != nil {
		payload["support"] = data
	}
	if data := stepData(results, "analyze_patterns"); data != nil {
		payload["patterns"] = data
	}
	if data := stepData(results, "save_mood_data"); data != nil {
		payload["tracking"] = data
	}

	return payload
}

// CollaborationTriggers implements Capability. Difficult moods bring in the
// nutrition, fitness and mental wellness agents.
func (m *MoodMate) CollaborationTriggers(_ []core.StepResult, sc *core.StepContext) []string {
	if !sc.Plan.Intent.HasCategory("mood") {
		return nil
	}
	switch stepMood(sc) {
	case "stressed", "anxious", "sad":
		return []string{"NutriCoach", "FlexGenie", "MindPal"}
	}
	return nil
}

// MemoryUpdate implements Capability.
func (m *MoodMate) MemoryUpdate(_ []core.StepResult, sc *core.StepContext, success bool) map[string]any {
	var mem core.MoodMemory
	if err := core.DecodeMemoryData(sc.Memory, &mem); err != nil {
		m.opts.Logger.Warn("mood memory decode failed", "agent", m.Name(), "error", err)
		return nil
	}

	mood := stepMood(sc)
	mem.LastMood = mood
	mem.MoodHistory = append(mem.MoodHistory, core.MoodSample{Mood: mood, Score: moodScore(mood), At: time.Now()})
	if len(mem.MoodHistory) > moodHistoryLimit {
		mem.MoodHistory = mem.MoodHistory[len(mem.MoodHistory)-moodHistoryLimit:]
	}
	if success {
		mem.SuccessfulRuns++
	}

	data, err := core.EncodeMemoryData(mem)
	if err != nil {
		m.opts.Logger.Warn("mood memory encode failed", "agent", m.Name(), "error", err)
		return nil
	}
	return data
}

// ErrorResponse implements Capability.
func (m *MoodMate) ErrorResponse(err error, _ core.Input) string {
	switch core.KindOf(err) {
	case core.ErrorKindProvider:
		return "I'm having trouble reaching my music and sentiment services right now, but I'm still here for you. How are you feeling?"
	case core.ErrorKindStorage:
		return "I couldn't save your mood right now, but your feelings still matter. Let's try again in a moment."
	}
	return "I encountered an issue while analyzing your mood. Please try again or describe how you're feeling in different words."
}
