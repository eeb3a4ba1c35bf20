package content

import (
	"context"

	"github.com/hupe1980/wellmesh/core"
)

// MusicContent bundles playlist suggestions and a motivational quote for a
// mood.
type MusicContent struct {
	Playlists []string `json:"playlists"`
	Quote     string   `json:"quote"`
}

// Meal is one meal suggestion inside a nutrition plan.
type Meal struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    string   `json:"benefits"`
	Emoji       string   `json:"emoji"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// NutritionPlan is the structured nutrition payload.
type NutritionPlan struct {
	Meals         []Meal   `json:"meals"`
	HydrationGoal int      `json:"hydrationGoal"` // glasses per day
	Adaptations   []string `json:"adaptations,omitempty"`
	PrimaryFocus  string   `json:"primaryFocus,omitempty"`
}

// Exercise is one exercise inside a workout plan.
type Exercise struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Duration    int    `json:"duration"` // minutes
	Intensity   string `json:"intensity"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl,omitempty"`
}

// WorkoutPlan is the structured fitness payload.
type WorkoutPlan struct {
	Exercises        []Exercise `json:"exercises"`
	WorkoutType      string     `json:"workoutType"`
	EnergyAdaptation string     `json:"energyAdaptation,omitempty"`
}

// WorkoutVideo is one curated exercise video recommendation.
type WorkoutVideo struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Duration   int    `json:"duration"` // minutes
	Difficulty string `json:"difficulty"`
}

// TherapyResource is one professional support pointer.
type TherapyResource struct {
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
}

// MentalSupport is the structured mental wellness payload.
type MentalSupport struct {
	JournalPrompt    string            `json:"journalPrompt"`
	Affirmation      string            `json:"affirmation"`
	Techniques       []string          `json:"techniques"`
	TherapyResources []TherapyResource `json:"therapyResources,omitempty"`
}

// Provider supplies domain content for agent EXECUTE phases. Implementations
// are called at most once per capability per run and must be substitutable by
// the deterministic fallback values when they fail; failures carry
// core.ErrorKindProvider.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// MusicForMood returns playlists and a quote matching the mood.
	MusicForMood(ctx context.Context, mood string) (MusicContent, error)

	// NutritionPlan returns a meal plan adapted to mood and preferences.
	NutritionPlan(ctx context.Context, mood string, preferences map[string]any) (NutritionPlan, error)

	// WorkoutPlan returns exercises matched to mood, energy and time budget.
	WorkoutPlan(ctx context.Context, mood string, energyLevel, timeBudget int) (WorkoutPlan, error)

	// WorkoutVideos returns curated exercise videos for the mood.
	WorkoutVideos(ctx context.Context, mood string) ([]WorkoutVideo, error)

	// MentalWellnessSupport returns a journal prompt, affirmation and
	// techniques for the mood and stress level.
	MentalWellnessSupport(ctx context.Context, mood string, stressLevel int) (MentalSupport, error)

	// WellnessSuggestions turns an analytics summary into actionable
	// suggestions.
	WellnessSuggestions(ctx context.Context, summary string) ([]string, error)

	// ConversationReply produces a conversational answer for the agent
	// persona given the message, recent history and user context.
	ConversationReply(ctx context.Context, agentName, message string, history []core.ChatMessage, uc core.UserContext) (string, error)

	// ExtractIntent interprets a free-text message into a structured chat
	// intent for the given agent.
	ExtractIntent(ctx context.Context, message, agentName string) (core.ChatIntent, error)
}

// HistoryWindow bounds how many trailing conversation turns providers include
// as context.
const HistoryWindow = 6

// TailHistory returns the last HistoryWindow turns of history.
func TailHistory(history []core.ChatMessage) []core.ChatMessage {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}
